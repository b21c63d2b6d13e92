package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

// cacheCommand creates the cache management command.
//
// The subcommands operate on the file backend's directory. Redis and mongo
// backends are managed externally and only report their configuration.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the layout and render cache",
	}

	cmd.AddCommand(c.cacheInfoCommand())
	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheInfoCommand creates the "cache info" subcommand.
func (c *CLI) cacheInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show cache backend, entry count, and size",
		RunE: func(cmd *cobra.Command, args []string) error {
			backend := c.Config.Cache.Backend
			if backend == "" {
				backend = cacheBackendFile
			}
			printKeyValue("Backend", backend)

			switch backend {
			case cacheBackendRedis:
				printKeyValue("Address", c.Config.Cache.RedisAddr)
				return nil
			case cacheBackendMongo:
				printKeyValue("URI", c.Config.Cache.MongoURI)
				return nil
			case cacheBackendNone:
				return nil
			}

			dir, err := c.fileCacheDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			printKeyValue("Directory", dir)

			entries, size := scanCacheDir(dir)
			printKeyValue("Entries", StyleNumber.Render(fmt.Sprintf("%d", entries)))
			printKeyValue("Size", StyleNumber.Render(formatBytes(size)))
			return nil
		},
	}
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear all cached layouts and artifacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			if b := c.Config.Cache.Backend; b == cacheBackendRedis || b == cacheBackendMongo {
				printWarning("Cache backend %s is managed externally", b)
				return nil
			}

			dir, err := c.fileCacheDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}

			if _, err := os.Stat(dir); os.IsNotExist(err) {
				printInfo("Cache is empty")
				return nil
			}

			count := 0
			err = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
				if err != nil {
					return nil // Skip errors, continue walking
				}
				if path == dir {
					return nil
				}
				if !info.IsDir() {
					if err := os.Remove(path); err == nil {
						count++
					}
				}
				return nil
			})
			if err != nil {
				return err
			}

			// Clean up empty subdirectories
			_ = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
				if err != nil || path == dir {
					return nil
				}
				if info.IsDir() {
					os.Remove(path)
				}
				return nil
			})

			printSuccess("Cleared %d cached entries", count)
			printDetail("Directory: %s", dir)
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory path",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := c.fileCacheDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			fmt.Println(dir)
			return nil
		},
	}
}

// fileCacheDir resolves the file backend's directory: the configured dir
// when set, the XDG cache dir otherwise.
func (c *CLI) fileCacheDir() (string, error) {
	if dir := c.Config.Cache.Dir; dir != "" {
		return dir, nil
	}
	return cacheDir()
}

// scanCacheDir counts cache entries under dir and sums their sizes.
// Missing directories count as empty.
func scanCacheDir(dir string) (entries int, size int64) {
	_ = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}
		if strings.HasSuffix(path, ".json") {
			entries++
			size += info.Size()
		}
		return nil
	})
	return entries, size
}

// formatBytes renders a byte count in human-readable form.
func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMG"[exp])
}
