// Package backup moves a whole wiki in and out of a single stream.
//
// The format is zstd-compressed JSON lines, one {"name","body"} object per
// article, in the store's list order.
package backup
