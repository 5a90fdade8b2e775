package templates

import (
	"github.com/beevik/etree"
	"github.com/civixgo/civix/pkg/layout"
	"github.com/civixgo/civix/pkg/types"
)

// testListener is registered so CiviCRM can boot headless and e2e tests
const testListener = `Civi\Test\CiviTestListener`

// BuildPhpunitXML builds phpunit.xml.dist for the extension described by ctx.
// The suite is named after the extension key when known.
func BuildPhpunitXML(ctx types.Context) (string, error) {
	suiteName := ctx.String(types.ContextKeyFullName)
	if suiteName == "" {
		suiteName = "My Test Suite"
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0"`)

	root := doc.CreateElement("phpunit")
	for _, attr := range [][2]string{
		{"backupGlobals", "false"},
		{"backupStaticAttributes", "false"},
		{"colors", "true"},
		{"convertErrorsToExceptions", "true"},
		{"convertNoticesToExceptions", "true"},
		{"convertWarningsToExceptions", "true"},
		{"processIsolation", "false"},
		{"stopOnFailure", "false"},
		{"bootstrap", layout.BootstrapRel()},
	} {
		root.CreateAttr(attr[0], attr[1])
	}

	suite := root.CreateElement("testsuites").CreateElement("testsuite")
	suite.CreateAttr("name", suiteName)
	suite.CreateElement("directory").SetText("./" + layout.TestRootRel())

	coverage := root.CreateElement("filter").CreateElement("whitelist")
	dir := coverage.CreateElement("directory")
	dir.CreateAttr("suffix", ".php")
	dir.SetText("./")

	listener := root.CreateElement("listeners").CreateElement("listener")
	listener.CreateAttr("class", testListener)
	listener.CreateElement("arguments")

	doc.Indent(2)
	return doc.WriteToString()
}
