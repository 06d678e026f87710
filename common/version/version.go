// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package version node and app versions
package version

const version = "1.0.0"

var appVersion = ""

//GetVersion node version
func GetVersion() string {
	return version
}

//SetAppVersion version of the configured app, empty keeps the node version
func SetAppVersion(v string) {
	appVersion = v
}

//GetAppVersion app version, defaults to the node version
func GetAppVersion() string {
	if appVersion == "" {
		return version
	}
	return appVersion
}
