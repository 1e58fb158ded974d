// Package utils provides utility functions.
package utils

import "strings"

// ToSlash converts Windows backslash separators to forward slashes
// \folder\file.txt -> /folder/file.txt
func ToSlash(path string) string {
	return strings.ReplaceAll(path, "\\", "/")
}

// JoinMountPath joins a mount point and a share-relative remainder with
// exactly one separator. An empty remainder (or one made only of slashes)
// yields the mount point unchanged.
func JoinMountPath(mountPoint, remainder string) string {
	rest := strings.TrimLeft(remainder, "/")
	if rest == "" {
		return mountPoint
	}
	return strings.TrimRight(mountPoint, "/") + "/" + rest
}
