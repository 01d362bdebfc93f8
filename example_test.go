package guid_test

import (
	"errors"
	"fmt"

	"github.com/Lzww0608/guid"
)

func ExampleParse() {
	g, err := guid.Parse("72631e54-78a4-11d0-bcf7-00aa00b7b32a")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("data1 %#08x\n", g.Data1)
	fmt.Printf("data2 %#04x\n", g.Data2)
	fmt.Printf("data3 %#04x\n", g.Data3)
	fmt.Printf("data4 % x\n", g.Data4)
	fmt.Printf("bytes %x\n", g.Bytes())
	fmt.Println(g)

	// Output:
	// data1 0x72631e54
	// data2 0x78a4
	// data3 0x11d0
	// data4 bc f7 00 aa 00 b7 b3 2a
	// bytes 541e6372a478d011bcf700aa00b7b32a
	// 72631e54-78a4-11d0-bcf7-00aa00b7b32a
}

func ExampleParse_errors() {
	inputs := []string{
		" 1020304-0506-0708-090a-0b0d0e0f1011",
		"01020304-0x06-0708-090a-0b0d0e0f1011",
	}
	for _, s := range inputs {
		_, err := guid.Parse(s)
		switch {
		case errors.Is(err, guid.ErrInvalidLength):
			fmt.Println("invalid length")
		case errors.Is(err, guid.ErrInvalidHexDigit):
			fmt.Println("invalid hex digit")
		}
	}

	// Output:
	// invalid length
	// invalid hex digit
}

func ExampleGuid_MSString() {
	g := guid.MustParse("c12a7328-f81f-11d2-ba4b-00a0c93ec93b")
	fmt.Println(g.MSString())

	// Output:
	// {C12A7328-F81F-11D2-BA4B-00A0C93EC93B}
}
