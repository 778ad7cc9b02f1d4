package collector

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/example/wmstatus/internal/types"
)

// gigabytes matches the size columns of `df -h`. On the matched line the
// first hit is the Size column and the second the Used column.
var gigabytes = regexp.MustCompile(`(\d+)G`)

// CollectDiskUsage runs the disk-usage command once and returns one entry
// per label, in label order.
func CollectDiskUsage(ctx context.Context, r Runner, command []string, labels []string) ([]types.VolumeUsage, error) {
	out, err := run(ctx, r, command)
	if err != nil {
		return nil, err
	}
	return ParseDiskUsage(out, labels), nil
}

// ParseDiskUsage extracts used/total gigabytes for each label from df -h
// style text. A label without a matching line gets a zero entry.
func ParseDiskUsage(output string, labels []string) []types.VolumeUsage {
	lines := strings.Split(output, "\n")
	volumes := make([]types.VolumeUsage, 0, len(labels))
	for _, label := range labels {
		v := types.VolumeUsage{Label: label}
		for _, line := range lines {
			if !strings.Contains(line, label) {
				continue
			}
			sizes := gigabytes.FindAllStringSubmatch(line, 2)
			if len(sizes) > 0 {
				v.TotalGB = atoi(sizes[0][1])
			}
			if len(sizes) > 1 {
				v.UsedGB = atoi(sizes[1][1])
			}
			break
		}
		volumes = append(volumes, v)
	}
	return volumes
}

// FormatVolume renders v as "<used>/<total> G".
func FormatVolume(v types.VolumeUsage) string {
	return fmt.Sprintf("%d/%d G", v.UsedGB, v.TotalGB)
}

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
