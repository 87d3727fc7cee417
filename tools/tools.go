// +build tools

// Do not compile this; it will cause an error
// See https://github.com/golang/go/wiki/Modules#how-can-i-track-tool-dependencies-for-a-module

// To install a tool: go install <tool path>
// Ex. go install github.com/golang/mock/mockgen

package tools

import (
	_ "github.com/golang/mock/mockgen"
)
