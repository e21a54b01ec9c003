package nanobv_test

import (
	"fmt"
	"log"

	"github.com/inspier/nanobv"
)

// ExampleNew demonstrates checked construction with masking.
func ExampleNew() {
	v, err := nanobv.New[uint8](0b0011101, 7)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(v)
	fmt.Println(v.Bit(0), v.Bit(1))
	// Output:
	// 0b0011101/7
	// 1 0
}

// ExampleMust demonstrates the panic-on-error wrapper together with the
// width aliases.
func ExampleMust() {
	var reg nanobv.Vec16 = nanobv.Must(nanobv.Zeros[uint16](12))

	fmt.Println(reg.Len(), reg.Width())
	// Output: 12 16
}

func ExampleVector_Reverse() {
	v := nanobv.Must(nanobv.New[uint8](0b0011101, 7))

	fmt.Println(v.Reverse())
	// Output: 0b1011100/7
}

// ExampleVector_And demonstrates truncation to the shorter operand.
func ExampleVector_And() {
	a := nanobv.Must(nanobv.Ones[uint8](8))
	b := nanobv.Must(nanobv.New[uint8](0x0F, 4))

	fmt.Println(a.And(b))
	// Output: 0b1111/4
}

func ExampleVector_Add() {
	a := nanobv.Must(nanobv.New[uint8](250, 8))
	b := nanobv.Must(nanobv.New[uint8](10, 8))

	fmt.Println(a.Add(b))
	// Output: 0b00000100/8
}

func ExampleVector_SetBit() {
	v := nanobv.Must(nanobv.Zeros[uint8](5))

	v = v.SetBit(0).SetBit(2).SetBit(4)

	fmt.Println(v)
	// Output: 0b10101/5
}

func ExampleVector_Slice() {
	v := nanobv.Must(nanobv.New[uint16](0b1101101, 7))

	fmt.Println(v.Slice(2, 5))
	// Output: 0b011/3
}

func ExampleVector_NextSetBit() {
	v := nanobv.Must(nanobv.New[uint8](0b10010010, 8))

	for i := v.NextSetBit(0); i >= 0; i = v.NextSetBit(i + 1) {
		fmt.Println(i)
	}
	// Output:
	// 1
	// 4
	// 7
}
