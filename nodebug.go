//go:build !debugArgp
// +build !debugArgp

package argp

const debugging = false

func debugf(string, ...interface{}) {}
func debug(...interface{})          {}
