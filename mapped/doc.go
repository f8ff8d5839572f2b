// Package mapped exposes fixed-size records stored in a file as live Go
// values, using memory-mapped I/O via [mmapfile] and the byte views of
// [safecast].
//
// [Open] and [OpenFile] prefer a mapping and fall back to [os.File] when mmap
// is unavailable or unsuitable (append mode, or create/truncate without a
// size). Only the mapped backend supports [At] and [Records]; the fallback
// returns [ErrNotMapped] and must be accessed through ReadAt/WriteAt.
//
// A value returned by [At] or [Records] aliases the mapping. Writes through it
// change the file contents, and it becomes invalid once the file is closed.
package mapped
