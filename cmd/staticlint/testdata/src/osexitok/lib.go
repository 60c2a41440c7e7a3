package osexitok

import "os"

func main() {
	os.Exit(1)
}
