// Package logtail reads the tail of the console's zap log file.
//
// The console owns the terminal while it runs, so its log goes to a file
// (see package logger). Read scans that file once with a ring buffer of the
// requested size and returns the newest records in chronological order,
// optionally dropping records below a level. Both the console and json zap
// encodings are understood; lines that carry no level are attached to the
// record above them.
//
//	lines, err := logtail.Read(cfg.LogPath, 50, zapcore.WarnLevel)
package logtail
