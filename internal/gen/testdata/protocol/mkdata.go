//go:build ignore

// mkdata prints the partition table used by partition.go.
package main

import "fmt"

//guid:var Ignored 0fc63daf-8483-4772-8e79-3d69d8477de4

func main() {
	fmt.Println("EFISystemPartition c12a7328-f81f-11d2-ba4b-00a0c93ec93b")
}
