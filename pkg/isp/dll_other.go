// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !windows
// +build !windows

package isp

// Open always fails: the vendor library is a Windows DLL.
func Open(path string) (Library, error) {
	return nil, ErrUnsupportedPlatform
}
