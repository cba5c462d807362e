// SPDX-License-Identifier: MIT
package server

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"

	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru/v2"
)

// resultCache memoises successful constructions by request body.
// A nil *resultCache is a disabled cache.
type resultCache struct {
	entries   *lru.Cache[string, TreeResponse]
	precision string
}

// newResultCache returns a cache of size entries, or nil when size ≤ 0.
// precision is the server default mixed into every key.
func newResultCache(size, precision int) *resultCache {
	if size <= 0 {
		return nil
	}
	entries, err := lru.New[string, TreeResponse](size)
	if err != nil {
		return nil
	}

	return &resultCache{entries: entries, precision: strconv.Itoa(precision)}
}

// key hashes the raw body stored by ShouldBindBodyWith.
func (rc *resultCache) key(c *gin.Context) string {
	if rc == nil {
		return ""
	}
	body, ok := c.Get(gin.BodyBytesKey)
	if !ok {
		return ""
	}
	raw, _ := body.([]byte)
	h := sha256.New()
	h.Write([]byte(rc.precision))
	h.Write([]byte{0})
	h.Write(raw)

	return hex.EncodeToString(h.Sum(nil))
}

func (rc *resultCache) get(key string) (TreeResponse, bool) {
	if rc == nil || key == "" {
		return TreeResponse{}, false
	}
	resp, ok := rc.entries.Get(key)
	resp.Cached = ok

	return resp, ok
}

func (rc *resultCache) add(key string, resp TreeResponse) {
	if rc == nil || key == "" {
		return
	}
	rc.entries.Add(key, resp)
}
