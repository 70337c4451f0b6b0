package blockmap

// Diff summarizes what a client holding the old version of a file needs to
// fetch to build the new one.
type Diff struct {
	TotalChunks    int
	TotalBytes     int64
	ReusedChunks   int
	ReusedBytes    int64
	DownloadChunks int
	DownloadBytes  int64
}

type chunkKey struct {
	checksum string
	size     int
}

// Compare matches the chunks of newer against older by checksum and size.
func Compare(older, newer *File) Diff {
	have := make(map[chunkKey]struct{}, len(older.Sizes))
	for i := range min(len(older.Sizes), len(older.Checksums)) {
		have[chunkKey{older.Checksums[i], older.Sizes[i]}] = struct{}{}
	}

	var d Diff
	for i := range min(len(newer.Sizes), len(newer.Checksums)) {
		size := newer.Sizes[i]
		d.TotalChunks++
		d.TotalBytes += int64(size)
		if _, ok := have[chunkKey{newer.Checksums[i], size}]; ok {
			d.ReusedChunks++
			d.ReusedBytes += int64(size)
			continue
		}
		d.DownloadChunks++
		d.DownloadBytes += int64(size)
	}
	return d
}

// ReusedPercentage returns the share of bytes that need no download.
func (d Diff) ReusedPercentage() float64 {
	if d.TotalBytes == 0 {
		return 100
	}
	return float64(d.ReusedBytes) / float64(d.TotalBytes) * 100
}
