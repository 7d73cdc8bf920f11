//go:build !unix

package main

import "fmt"

func raiseSegv() {
	fmt.Println("crash demonstration is only available on unix platforms")
}
