package agent

import "errors"

var ErrEmptyTranscript = errors.New("transcript has no user or assistant messages")
