package middleware

import "github.com/gin-gonic/gin"

const mountPrefixKey = "mount_prefix"

// MountPrefix records the path prefix a route group is mounted under, so
// rendered links and redirects stay inside the same mount.
func MountPrefix(prefix string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(mountPrefixKey, prefix)
		c.Next()
	}
}

// GetMountPrefix returns the prefix without a trailing slash; "" for the root.
func GetMountPrefix(c *gin.Context) string {
	return c.GetString(mountPrefixKey)
}
