// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"testing"

	"github.com/MKhiriev/newslog-sync/internal/logger"
	"github.com/MKhiriev/newslog-sync/models"
	"github.com/stretchr/testify/assert"
)

func TestLogNotifier_Levels(t *testing.T) {
	var buf bytes.Buffer
	n := NewLogNotifier(logger.New(&buf, "test"))

	n.Notify(info("fetching"))
	n.Notify(warning("careful"))
	n.Notify(failure("broken"))

	out := buf.String()
	assert.Contains(t, out, `"level":"info"`)
	assert.Contains(t, out, `"level":"warn"`)
	assert.Contains(t, out, `"level":"error"`)
	assert.Contains(t, out, `"message":"broken"`)
}

func TestMultiNotifier_FansOut(t *testing.T) {
	var got []string
	collect := NotifierFunc(func(n models.Notice) { got = append(got, n.Message) })

	m := MultiNotifier{collect, nil, collect}
	m.Notify(info("hello"))

	assert.Equal(t, []string{"hello", "hello"}, got)
}
