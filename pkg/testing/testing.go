package testing

import (
	"os"
	"path"
	"runtime"
)

// Importing this package for its side effect moves the working directory to
// the module root, so logs/ and sqlite files land in one place:
//
//	import (
//	  _ "liyu1981.xyz/model-monitor-service/pkg/testing"
//	)
func init() {
	_, filename, _, _ := runtime.Caller(0)
	root := path.Join(path.Dir(filename), "..", "..")
	if err := os.Chdir(root); err != nil {
		panic(err)
	}
}
