// Command seocheck requests the SEO files from BASE_URL and reports what came back.
package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"strings"
	"time"

	"kirana/internal/static"
)

func main() {
	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:5000"
	}
	baseURL = strings.TrimRight(baseURL, "/")

	fmt.Printf("Base URL: %s\n\n", baseURL)

	names := make([]string, 0, len(static.Files))
	for name := range static.Files {
		names = append(names, name)
	}
	sort.Strings(names)

	client := &http.Client{Timeout: 10 * time.Second}
	allPassed := true

	for _, name := range names {
		if err := check(client, baseURL+"/"+name, static.Files[name]); err != nil {
			fmt.Printf("FAIL /%s\n     %v\n\n", name, err)
			allPassed = false
		}
	}

	if !allPassed {
		fmt.Println("Some files are not accessible. Make sure the server is running.")
		os.Exit(1)
	}
	fmt.Println("All SEO files are accessible.")
}

func check(client *http.Client, url, wantType string) error {
	resp, err := client.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %d (expected 200)", resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType != wantType {
		return fmt.Errorf("content type %q (expected %q)", contentType, wantType)
	}

	fmt.Printf("OK   %s\n     Status: %d\n     Content-Type: %s\n     Size: %d bytes\n\n", url, resp.StatusCode, contentType, len(body))
	return nil
}
