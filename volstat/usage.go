package volstat

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"
)

// RenderUsage writes a usage bar for the volume backing path followed by an
// inode summary.
func RenderUsage(w io.Writer, path string, stats *VolumeStats) error {
	total := int64(stats.UsedBytes() + stats.AvailableBytes())
	if total > 0 {
		bar := progressbar.NewOptions64(total,
			progressbar.OptionSetWriter(w),
			progressbar.OptionSetDescription(path),
			progressbar.OptionSetWidth(30),
			progressbar.OptionShowBytes(true),
			progressbar.OptionSetPredictTime(false),
			progressbar.OptionSetRenderBlankState(true),
		)
		if err := bar.Set64(int64(stats.UsedBytes())); err != nil {
			return err
		}
	} else if _, err := fmt.Fprint(w, path); err != nil {
		// pseudo filesystems report no blocks at all
		return err
	}

	flags := ""
	if stats.ReadOnly() {
		flags = " ro"
	}
	_, err := fmt.Fprintf(w, "\n  %.1f%% used, %s available, inodes %s/%s free, block %d, namemax %d%s\n",
		stats.UsedPercent(),
		humanize.IBytes(stats.AvailableBytes()),
		humanize.Comma(int64(stats.Favail)),
		humanize.Comma(int64(stats.Files)),
		stats.Frsize,
		stats.Namemax,
		flags,
	)
	return err
}
