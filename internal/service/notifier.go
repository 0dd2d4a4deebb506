// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/newslog-sync/internal/logger"
	"github.com/MKhiriev/newslog-sync/models"
	"github.com/rs/zerolog"
)

// Notifier receives the user-facing notices the flows emit: progress,
// summaries and failures. Implementations must not block for long; flows
// call Notify inline.
type Notifier interface {
	Notify(notice models.Notice)
}

// NotifierFunc adapts a plain function to [Notifier].
type NotifierFunc func(notice models.Notice)

func (f NotifierFunc) Notify(notice models.Notice) {
	f(notice)
}

type logNotifier struct {
	logger *logger.Logger
}

// NewLogNotifier returns a [Notifier] that writes every notice to logger at
// the level matching the notice.
func NewLogNotifier(logger *logger.Logger) Notifier {
	return &logNotifier{logger: logger}
}

func (n *logNotifier) Notify(notice models.Notice) {
	var level zerolog.Level
	switch notice.Level {
	case models.NoticeError:
		level = zerolog.ErrorLevel
	case models.NoticeWarning:
		level = zerolog.WarnLevel
	default:
		level = zerolog.InfoLevel
	}

	n.logger.WithLevel(level).Str("notice", notice.Level.String()).Msg(notice.Message)
}

// MultiNotifier fans a notice out to every notifier in order.
type MultiNotifier []Notifier

func (m MultiNotifier) Notify(notice models.Notice) {
	for _, n := range m {
		if n != nil {
			n.Notify(notice)
		}
	}
}

func info(msg string) models.Notice {
	return models.Notice{Level: models.NoticeInfo, Message: msg}
}

func warning(msg string) models.Notice {
	return models.Notice{Level: models.NoticeWarning, Message: msg}
}

func failure(msg string) models.Notice {
	return models.Notice{Level: models.NoticeError, Message: msg}
}
