package release

import (
	"fmt"
	"strings"

	"zpack/pkg/types"
)

// ParseVersion parses a release version of the form "v<MAJOR>.<MINOR>[.<PATCH>]".
// The leading "v" is optional. Anything past the patch component is rejected.
func ParseVersion(s string) (types.Version, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(s), "v")
	parts := strings.Split(raw, ".")
	if len(parts) < 2 || len(parts) > 3 || parts[0] == "" || parts[1] == "" {
		return types.Version{}, fmt.Errorf("invalid version %q: want v<major>.<minor>[.<patch>]", s)
	}
	v := types.Version{Major: parts[0], Minor: parts[1]}
	if len(parts) == 3 {
		if parts[2] == "" {
			return types.Version{}, fmt.Errorf("invalid version %q: empty patch component", s)
		}
		v.Patch = parts[2]
	}
	return v, nil
}

// ArchiveName returns the deterministic archive filename for one family at one
// version: "<prefix>_v<MAJOR><MINOR>.zip".
func ArchiveName(family types.Family, v types.Version) string {
	return family.ArchivePrefix + "_v" + v.ArchiveTag() + ".zip"
}
