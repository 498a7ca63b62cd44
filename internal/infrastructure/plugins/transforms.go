package plugins

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
)

type base64Plugin struct{}

func (base64Plugin) Name() string        { return "base64" }
func (base64Plugin) Description() string { return "Encode the text as standard base64" }

func (base64Plugin) Run(input string) (string, error) {
	return base64.StdEncoding.EncodeToString([]byte(input)), nil
}

type urlPlugin struct{}

func (urlPlugin) Name() string        { return "url" }
func (urlPlugin) Description() string { return "Percent-encode the text for use in a URL" }

func (urlPlugin) Run(input string) (string, error) {
	return url.QueryEscape(input), nil
}

type hashPlugin struct{}

func (hashPlugin) Name() string        { return "hash" }
func (hashPlugin) Description() string { return "Digest the text with md5, sha1 and sha256" }

func (hashPlugin) Run(input string) (string, error) {
	data := []byte(input)
	return fmt.Sprintf("md5: %x\nsha1: %x\nsha256: %x",
		md5.Sum(data), sha1.Sum(data), sha256.Sum256(data)), nil
}

type wordCountPlugin struct{}

func (wordCountPlugin) Name() string        { return "wordcount" }
func (wordCountPlugin) Description() string { return "Count words, characters and lines" }

func (wordCountPlugin) Run(input string) (string, error) {
	lines := 0
	if input != "" {
		lines = strings.Count(input, "\n") + 1
	}
	return fmt.Sprintf("words: %s\ncharacters: %s\nlines: %s",
		humanize.Comma(int64(len(strings.Fields(input)))),
		humanize.Comma(int64(utf8.RuneCountInString(input))),
		humanize.Comma(int64(lines))), nil
}
