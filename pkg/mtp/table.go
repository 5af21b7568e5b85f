// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mtp

import (
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/camelcase"

	"github.com/linuxboot/mtpextract/pkg/isp"
)

// WriteMCUTable prints m as one "Label: value" row per descriptor field.
// Labels are derived from the field names, e.g. "Max Program Page". Fields
// tagged unit:"bytes" also get an IEC size.
func WriteMCUTable(w io.Writer, m isp.MCUInfo) {
	v := reflect.ValueOf(m)
	t := v.Type()

	type row struct{ label, value string }
	var rows []row
	width := 0
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Tag.Get("json") == "-" {
			continue
		}
		label := strings.Join(camelcase.Split(f.Name), " ")
		var value string
		switch fv := v.Field(i); fv.Kind() {
		case reflect.Int32:
			value = humanize.Comma(fv.Int())
			if f.Tag.Get("unit") == "bytes" && fv.Int() > 0 {
				value += " (" + humanize.IBytes(uint64(fv.Int())) + ")"
			}
		default:
			value = fmt.Sprint(fv.Interface())
		}
		rows = append(rows, row{label, value})
		if len(label) > width {
			width = len(label)
		}
	}
	for _, r := range rows {
		fmt.Fprintf(w, "%-*s : %s\n", width, r.label, r.value)
	}
}
