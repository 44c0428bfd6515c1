// Qtmatrix generates the matrix of Qt install jobs tested on Azure Pipelines.
//
// Each job is emitted as a set of pipeline variables, grouped per platform and
// printed as output-variable logging commands.
package main

import (
	"github.com/opnlabs/qtmatrix/cmd/qtmatrix"
)

func main() {
	qtmatrix.Execute()
}
