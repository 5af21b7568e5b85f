// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mtp

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/u-root/u-root/pkg/ulog"
	"github.com/ulikunitz/xz"
)

// PrepareInput returns a path the vendor library can open. The library only
// reads plain files, so an .xz compressed container is unpacked into a
// temporary file first. The returned func removes that file and must be
// called once the library is done with it.
func PrepareInput(path string, log ulog.Logger) (string, func(), error) {
	ext := filepath.Ext(path)
	if !strings.EqualFold(ext, ".xz") {
		return path, func() {}, nil
	}

	in, err := os.Open(path)
	if err != nil {
		return "", nil, err
	}
	defer in.Close()

	r, err := xz.NewReader(in)
	if err != nil {
		return "", nil, fmt.Errorf("could not read xz stream %s: %w", path, err)
	}

	base := strings.TrimSuffix(filepath.Base(path), ext)
	tmp, err := os.CreateTemp("", "mtpextract-*-"+base)
	if err != nil {
		return "", nil, err
	}
	cleanup := func() {
		os.Remove(tmp.Name())
	}
	n, err := io.Copy(tmp, r)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		cleanup()
		return "", nil, fmt.Errorf("could not decompress %s: %w", path, err)
	}
	if log != nil {
		log.Printf("decompressed %s to %s (%s)", path, tmp.Name(), humanize.Bytes(uint64(n)))
	}
	return tmp.Name(), cleanup, nil
}
