// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/33cn/wintergame/types"
)

var (
	//ErrWorkflowNotFound workflow missing from the catalog
	ErrWorkflowNotFound = types.Validationf("Unknown workflow")
	//ErrRequestPending a request of this workflow is outstanding
	ErrRequestPending = types.StateConflictf("A mint request is already pending")
	//ErrNoRequest claim without a request
	ErrNoRequest = types.StateConflictf("No mint request found")
	//ErrTarget target nft missing, of another class or of the wrong kind
	ErrTarget = types.Validationf("Target is not eligible for this workflow")
	//ErrTargetNotOwned caller does not hold the target
	ErrTargetNotOwned = types.Validationf("Target is not owned by the caller")
	//ErrCatalog broken workflow catalog
	ErrCatalog = types.NewError(types.ErrValidation, "ErrCatalog")
)
