// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

/*
竞技场: 两人押注对决

玩法:

1. 发起 (CreateGame): 附带入场费和一个士兵 NFT, 入场费进入发起者的押金, 士兵托管在合约地址
2. 应战 (JoinGame): 附带不少于入场费的货币, 应战者只需持有一个士兵
3. 开战 (StartFight): 任何人都可以调用, 按双方战力计算发起者胜率,
   用区块随机种子的前 8 字节抽签, 胜者拿走双方押金和发起者托管的士兵

status: Open 1 -> Staged 2 -> Resolved 3

押金按 (game, addr) 记账, 结算时清零, 同一局不会重复支付.

对外查询接口
1. 按 id 查询对局
2. 按状态和地址分页查询对局
3. 查询地址的押金总额
*/
