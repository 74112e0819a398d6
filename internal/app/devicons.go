package app

import (
	"os"
	"time"

	devicons "github.com/epilande/go-devicons"
	lru "github.com/hashicorp/golang-lru/v2"
)

const iconCacheSize = 256

type iconFileInfo struct {
	name  string
	isDir bool
}

func (i iconFileInfo) Name() string { return i.name }

func (i iconFileInfo) Size() int64 { return 0 }

func (i iconFileInfo) Mode() os.FileMode {
	if i.isDir {
		return os.ModeDir | 0o755
	}
	return 0
}

func (i iconFileInfo) ModTime() time.Time { return time.Time{} }

func (i iconFileInfo) IsDir() bool { return i.isDir }

func (i iconFileInfo) Sys() any { return nil }

type iconKey struct {
	name  string
	isDir bool
}

// iconCache memoises devicon lookups for explorer rows, which are rendered
// on every frame.
type iconCache struct {
	cache *lru.Cache[iconKey, string]
}

func newIconCache() *iconCache {
	cache, err := lru.New[iconKey, string](iconCacheSize)
	if err != nil {
		return &iconCache{}
	}
	return &iconCache{cache: cache}
}

func (c *iconCache) lookup(name string, isDir bool) string {
	if name == "" {
		return ""
	}
	key := iconKey{name: name, isDir: isDir}
	if c.cache != nil {
		if icon, ok := c.cache.Get(key); ok {
			return icon
		}
	}
	icon := deviconForName(name, isDir)
	if c.cache != nil {
		c.cache.Add(key, icon)
	}
	return icon
}

func deviconForName(name string, isDir bool) string {
	if name == "" {
		return ""
	}
	style := devicons.IconForInfo(iconFileInfo{name: name, isDir: isDir})
	return style.Icon
}

func iconWithSpace(icon string) string {
	if icon == "" {
		return ""
	}
	return icon + " "
}
