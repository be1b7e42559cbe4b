package util

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NormalizeTags 去除首尾空白与 # 前缀，保序去重
func NormalizeTags(raw []string) []string {
	tagSet := make(map[string]struct{})
	tags := make([]string, 0, len(raw))

	for _, t := range raw {
		tagName := strings.TrimSpace(t)
		tagName = strings.TrimLeft(tagName, "#")
		tagName = strings.Trim(tagName, ".,!?")

		if tagName == "" {
			continue
		}
		key := strings.ToLower(tagName)
		if _, exists := tagSet[key]; !exists {
			tagSet[key] = struct{}{}
			tags = append(tags, tagName)
		}
	}

	return tags
}

// ParseObjectID 解析 24 位十六进制 ID
func ParseObjectID(hex string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}
