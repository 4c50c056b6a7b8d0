// Package idgenerator produces unique, roughly sortable identifiers made of
// an optional prefix, an epoch-millis timestamp and a base64url-encoded UUID.
package idgenerator

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Generator interface {
	Generate(prefixes ...string) string
}

type generator struct{}

func New() Generator {
	return generator{}
}

func (generator) Generate(prefixes ...string) string {
	id := uuid.New()
	encoded := base64.RawURLEncoding.EncodeToString(id[:])
	suffix := fmt.Sprintf("%d%s", time.Now().UnixMilli(), encoded)

	prefix := strings.Join(prefixes, "-")
	if prefix == "" {
		return suffix
	}
	return prefix + "-" + suffix
}
