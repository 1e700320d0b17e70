package infra

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"moneyprinter/internal/domain"

	"github.com/disintegration/imaging"
)

// LogoCache downloads and caches badge and token artwork referenced by the
// seed fixtures.
type LogoCache struct {
	basePath string
	client   *http.Client
}

// NewLogoCache creates a new LogoCache rooted at the OS config location.
func NewLogoCache() (*LogoCache, error) {
	path, err := getAssetsPath()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve assets path: %w", err)
	}
	return NewLogoCacheAt(path)
}

// NewLogoCacheAt creates a LogoCache rooted at an explicit directory.
func NewLogoCacheAt(path string) (*LogoCache, error) {
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, fmt.Errorf("failed to create assets directory: %w", err)
	}

	// Optimize HTTP Transport to prevent connection leaks
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConns = 100
	transport.MaxConnsPerHost = 10
	transport.IdleConnTimeout = 30 * time.Second

	return &LogoCache{
		basePath: path,
		client: &http.Client{
			Timeout:   10 * time.Second,
			Transport: transport,
		},
	}, nil
}

// Download fetches the artwork at url for the named asset if not cached yet.
// Returns the local file path on success. Images are resized to 64x64 pixels
// for consistent display.
func (c *LogoCache) Download(name, url string) (string, error) {
	// Security: Sanitize name to prevent path traversal
	safeName := sanitizeAssetName(name)
	if safeName == "" {
		return "", domain.ErrInvalidAsset
	}

	fileName := strings.ToLower(safeName) + ".png"
	filePath := filepath.Join(c.basePath, fileName)

	// Check if exists
	if _, err := os.Stat(filePath); err == nil {
		return filePath, nil // Already exists (Cache Hit)
	}

	resp, err := c.client.Get(url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("bad status: %s", resp.Status)
	}

	// Decode the image
	srcImg, err := imaging.Decode(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	// Resize to 64x64 with high-quality Lanczos filter
	resizedImg := imaging.Resize(srcImg, 64, 64, imaging.Lanczos)

	// Save the resized image
	if err := imaging.Save(resizedImg, filePath); err != nil {
		return "", fmt.Errorf("failed to save resized image: %w", err)
	}

	return filePath, nil
}

// Path returns the local cache path for a named asset.
func (c *LogoCache) Path(name string) string {
	return filepath.Join(c.basePath, strings.ToLower(sanitizeAssetName(name))+".png")
}

func getAssetsPath() (string, error) {
	var configDir string
	var err error

	if runtime.GOOS == "windows" {
		configDir = os.Getenv("LOCALAPPDATA")
		if configDir == "" {
			configDir, err = os.UserConfigDir()
		}
	} else {
		configDir, err = os.UserConfigDir()
	}

	if err != nil {
		return "", err
	}

	return filepath.Join(configDir, "MoneyPrinter", "assets", "logos"), nil
}

func sanitizeAssetName(name string) string {
	res := make([]rune, 0, len(name))
	for _, r := range name {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' {
			res = append(res, r)
		}
	}
	return string(res)
}
