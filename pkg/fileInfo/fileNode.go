package fileInfo

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"

	"github.com/rescp17/leightbox/internal/util"
)

const defaultMimeType = "application/octet-stream"

// FileNode is a regular file found in a shared folder.
type FileNode struct {
	Name     string
	Size     uint64
	MimeType string
	Path     string
}

// CreateNode describes the file at path.
func CreateNode(path string) (FileNode, error) {
	info, err := os.Stat(path)
	if err != nil {
		return FileNode{}, err
	}
	if !info.Mode().IsRegular() {
		return FileNode{}, fmt.Errorf("%s: not a regular file", path)
	}
	node := FileNode{
		Name:     info.Name(),
		Size:     uint64(info.Size()),
		MimeType: defaultMimeType,
		Path:     path,
	}
	if mime, err := mimetype.DetectFile(path); err == nil {
		node.MimeType = mime.String()
	}
	return node, nil
}

// ScanFolder lists the regular files directly inside dir, ordered by name.
// Subdirectories are not descended into and unreadable entries are skipped.
func ScanFolder(dir string) ([]FileNode, error) {
	if err := util.RequireDirectory(dir); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read folder %s: %w", dir, err)
	}

	nodes := make([]FileNode, 0, len(entries))
	var total uint64
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		childPath := filepath.Join(dir, entry.Name())
		node, err := CreateNode(childPath)
		if err != nil {
			slog.Warn("Skipping file", "file", childPath, "error", err)
			continue
		}
		nodes = append(nodes, node)
		total += node.Size
	}

	slog.Info("Folder scanned", "folder", dir, "files", len(nodes), "total", util.FormatSize(total))
	return nodes, nil
}
