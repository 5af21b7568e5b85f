// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mtp

import (
	"encoding/json"

	"github.com/hashicorp/go-multierror"

	"github.com/linuxboot/mtpextract/pkg/isp"
)

// SegmentReport describes one written segment file.
type SegmentReport struct {
	Name  string
	File  string
	Words uint16
	Bytes int
	Err   error
}

// Report is the outcome of Driver.Run.
type Report struct {
	Input    string
	Status   int32
	Segments []SegmentReport
	MCU      isp.MCUInfo

	errs *multierror.Error
}

func (r *Report) addError(err error) {
	r.errs = multierror.Append(r.errs, err)
}

// Err returns every failure that happened during the run, or nil.
func (r *Report) Err() error {
	return r.errs.ErrorOrNil()
}

type segmentJSON struct {
	Name  string `json:"name"`
	File  string `json:"file"`
	Words uint16 `json:"words"`
	Bytes int    `json:"bytes"`
	Error string `json:"error,omitempty"`
}

type reportJSON struct {
	Input    string        `json:"input"`
	Status   int32         `json:"status"`
	Segments []segmentJSON `json:"segments"`
	MCU      isp.MCUInfo   `json:"mcu"`
	Errors   []string      `json:"errors,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (r *Report) MarshalJSON() ([]byte, error) {
	j := reportJSON{
		Input:    r.Input,
		Status:   r.Status,
		Segments: []segmentJSON{},
		MCU:      r.MCU,
	}
	for _, s := range r.Segments {
		sj := segmentJSON{Name: s.Name, File: s.File, Words: s.Words, Bytes: s.Bytes}
		if s.Err != nil {
			sj.Error = s.Err.Error()
		}
		j.Segments = append(j.Segments, sj)
	}
	if r.errs != nil {
		for _, err := range r.errs.Errors {
			j.Errors = append(j.Errors, err.Error())
		}
	}
	return json.Marshal(j)
}
