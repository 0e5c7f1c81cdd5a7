package installer

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"nvim-bootstrap/internal/logger"
)

const (
	fontRepo = "ryanoasis/nerd-fonts"
	fontName = "JetBrainsMono"
)

// InstallFont downloads the JetBrainsMono Nerd Font release archive and
// copies its font files into the user's font directory (~/Library/Fonts on
// macOS, ~/.local/share/fonts on Linux). Like tool installs it is
// idempotent: if any matching font file already exists the download is
// skipped entirely.
func InstallFont() error {
	fontDir, err := userFontDir()
	if err != nil {
		return err
	}

	matches, err := filepath.Glob(filepath.Join(fontDir, fontName+"*"))
	if err == nil && len(matches) > 0 {
		logger.Info("[INFO] %s Nerd Font is already installed. Skipping.\n", fontName)
		return nil
	}

	release, err := latestRelease(fontRepo)
	if err != nil {
		return err
	}
	// Nerd Font releases publish both archive flavors; prefer zip, fall back
	// to tar.xz.
	url, err := release.assetURL(fontName+".zip", fontName+".tar.xz")
	if err != nil {
		return err
	}

	tmpDir, err := os.MkdirTemp("", "nvim-bootstrap-font-")
	if err != nil {
		return fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	archivePath := filepath.Join(tmpDir, filepath.Base(url))
	logger.Info("[INFO] Downloading %s Nerd Font (%s)...\n", fontName, release.TagName)
	if err := downloadFile(url, archivePath); err != nil {
		return err
	}

	extractDir := filepath.Join(tmpDir, "extracted")
	if err := os.MkdirAll(extractDir, 0755); err != nil {
		return err
	}
	if err := extractArchive(archivePath, extractDir); err != nil {
		return err
	}

	if err := os.MkdirAll(fontDir, 0755); err != nil {
		return fmt.Errorf("failed to create font directory %s: %w", fontDir, err)
	}

	count, err := copyFontFiles(extractDir, fontDir)
	if err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("no font files found in %s release archive", fontName)
	}
	logger.Info("[INFO] Installed %d font files to %s.\n", count, fontDir)

	refreshFontCache()
	return nil
}

// userFontDir returns the per-user font directory for the current OS.
func userFontDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Fonts"), nil
	}
	return filepath.Join(home, ".local", "share", "fonts"), nil
}

// copyFontFiles walks the extracted archive and copies every .ttf/.otf file
// into destDir, flattening the directory structure. Returns how many files
// were copied.
func copyFontFiles(srcDir, destDir string) (int, error) {
	count := 0
	err := filepath.WalkDir(srcDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".ttf" && ext != ".otf" {
			return nil
		}
		dest := filepath.Join(destDir, filepath.Base(path))
		logger.Debug("[DEBUG] Copying font file %s to %s\n", path, dest)
		if err := copyFile(path, dest); err != nil {
			return err
		}
		count++
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// copyFile copies src to dst, truncating any existing file.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source failed: %w", err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("create target failed: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copy failed: %w", err)
	}
	return nil
}

// refreshFontCache rebuilds the fontconfig cache on Linux so the new fonts
// are visible without a logout. Best effort: macOS needs no cache step and a
// missing fc-cache only warns.
func refreshFontCache() {
	if runtime.GOOS == "darwin" {
		return
	}
	if _, err := exec.LookPath("fc-cache"); err != nil {
		logger.Warn("[WARN] fc-cache not found. Fonts may not appear until the next login.\n")
		return
	}
	if out, err := exec.Command("fc-cache", "-f").CombinedOutput(); err != nil {
		logger.Warn("[WARN] fc-cache failed: %v\nOutput: %s\n", err, out)
	}
}
