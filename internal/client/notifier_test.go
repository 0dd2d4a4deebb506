// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"strings"
	"testing"

	"github.com/MKhiriev/newslog-sync/models"
	"github.com/stretchr/testify/assert"
)

func TestLineNotifier(t *testing.T) {
	var out bytes.Buffer
	n := NewLineNotifier(&out)

	n.Notify(models.Notice{Level: models.NoticeInfo, Message: "Saved highlights to Kindle"})
	n.Notify(models.Notice{Level: models.NoticeWarning, Message: "Expected a file named My Clippings.txt"})
	n.Notify(models.Notice{Level: models.NoticeError, Message: "Could not reach the server"})

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if assert.Len(t, lines, 3) {
		assert.True(t, strings.HasSuffix(lines[0], " Saved highlights to Kindle"))
		assert.True(t, strings.HasSuffix(lines[1], " Expected a file named My Clippings.txt"))
		assert.True(t, strings.HasSuffix(lines[2], " Could not reach the server"))
	}
}
