package config

import "errors"

// ErrNotWritable is returned by Save when the document's write capability is
// disabled. Read/parse failures are wrapped around the underlying backing or
// JSON error instead of using a sentinel.
var ErrNotWritable = errors.New("config: document is not writable")
