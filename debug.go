//go:build debugArgp
// +build debugArgp

package argp

import (
	"log"
)

const debugging = true

func debugf(fmt string, args ...interface{}) {
	log.Printf("argp: "+fmt, args...)
}

func debug(args ...interface{}) {
	log.Println(append([]interface{}{"argp:"}, args...)...)
}
