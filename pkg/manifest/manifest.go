// Package manifest reads an extension's info.xml.
package manifest

import (
	"path/filepath"
	"strings"

	"github.com/beevik/etree"
	"github.com/civixgo/civix/pkg/errors"
	"github.com/civixgo/civix/pkg/logging"
	"github.com/civixgo/civix/pkg/types"
)

// FileName is the manifest file at the root of every extension
const FileName = "info.xml"

// TypeModule is the only extension type civix generates tests for
const TypeModule = "module"

// Info is the subset of info.xml civix needs
type Info struct {
	Key       string
	Type      string
	File      string
	Name      string
	Namespace string
}

// Load reads and parses <basedir>/info.xml
func Load(fsys types.FS, basedir string) (*Info, error) {
	logger := logging.GetLogger("manifest")
	path := filepath.Join(basedir, FileName)

	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifestLoad, "failed to read %s", path).
			WithDetail("path", path)
	}

	info, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifestParse, "failed to parse %s", path).
			WithDetail("path", path)
	}

	logger.Debug().
		Str("path", path).
		Str("key", info.Key).
		Str("type", info.Type).
		Msg("Loaded extension manifest")

	return info, nil
}

// Parse decodes info.xml contents
func Parse(data []byte) (*Info, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, err
	}

	root := doc.SelectElement("extension")
	if root == nil {
		return nil, errors.New(errors.ErrManifestParse, "missing <extension> root element")
	}

	info := &Info{
		Key:  strings.TrimSpace(root.SelectAttrValue("key", "")),
		Type: strings.TrimSpace(root.SelectAttrValue("type", "")),
		File: childText(root, "file"),
		Name: childText(root, "name"),
	}
	if ns := root.FindElement("./civix/namespace"); ns != nil {
		info.Namespace = strings.TrimSpace(ns.Text())
	}
	if info.Namespace == "" && info.File != "" {
		info.Namespace = "CRM/" + upperFirst(info.File)
	}

	return info, nil
}

// Context returns a context describing the extension rooted at basedir
func (i *Info) Context(basedir string) types.Context {
	return types.NewContext(map[string]interface{}{
		types.ContextKeyType:      i.Type,
		types.ContextKeyBasedir:   basedir,
		types.ContextKeyFullName:  i.Key,
		types.ContextKeyMainFile:  i.File,
		types.ContextKeyNamespace: i.Namespace,
	})
}

func childText(el *etree.Element, tag string) string {
	child := el.SelectElement(tag)
	if child == nil {
		return ""
	}
	return strings.TrimSpace(child.Text())
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
