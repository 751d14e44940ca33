package colser_test

import (
	"fmt"

	"github.com/AndrewDonelson/colser"
	"github.com/AndrewDonelson/colser/types"
)

func Example() {
	reg := colser.NewRegistry(colser.Config{})
	tags := colser.MustSetCodecOf[string](reg, types.UTF8{})

	b, err := tags.Encode(colser.SetOf("red", "green", "red", "blue"))
	if err != nil {
		panic(err)
	}
	fmt.Printf("% x\n", b)

	s, err := tags.Decode(b)
	if err != nil {
		panic(err)
	}
	fmt.Println(tags.Format(s))
	fmt.Println(tags.TypeTag())

	// Output:
	// 00 03 00 03 72 65 64 00 05 67 72 65 65 6e 00 04 62 6c 75 65
	// red; green; blue
	// set<string>
}

func ExampleSetCodec_Decode_truncated() {
	c := colser.NewSetCodec[int32](types.Int32{})
	_, err := c.Decode([]byte{0x00, 0x01, 0x00, 0x04, 0x00})
	fmt.Println(err)

	// Output:
	// colser: malformed collection data: element 0: frame: truncated collection frame: segment 0 payload needs 4 bytes, 1 available
}
