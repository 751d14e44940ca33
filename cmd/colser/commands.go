package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/AndrewDonelson/colser"
	"github.com/AndrewDonelson/colser/internal/frame"
	"github.com/AndrewDonelson/colser/types"
)

type env struct {
	reg  *colser.Registry
	kind string
	out  io.Writer
}

// runner executes encode or decode for one element type.
type runner func(e *env, command string, args []string) error

var elementTypes = map[string]runner{
	"utf8":    typed[string](types.UTF8{}, parseString),
	"ascii":   typed[string](types.ASCII{}, parseString),
	"bytes":   typed[string](types.Bytes{}, parseHexString),
	"int32":   typed[int32](types.Int32{}, parseInt32),
	"int64":   typed[int64](types.Int64{}, parseInt64),
	"boolean": typed[bool](types.Boolean{}, strconv.ParseBool),
	"double":  typed[float64](types.Double{}, parseDouble),
	"uuid":    typed[uuid.UUID](types.UUID{}, uuid.Parse),
}

func typeNames() string {
	names := make([]string, 0, len(elementTypes))
	for n := range elementTypes {
		names = append(names, n)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func dispatch(e *env, opts Options) error {
	if opts.Command == "inspect" {
		return inspect(e.out, opts.Args)
	}
	r, ok := elementTypes[strings.ToLower(opts.Type)]
	if !ok {
		return fmt.Errorf("unknown element type %q (want one of: %s)", opts.Type, typeNames())
	}
	switch opts.Command {
	case "encode", "decode":
		return r(e, opts.Command, opts.Args)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, opts.Command)
	}
}

func typed[T comparable](elems colser.ElementCodec[T], parse func(string) (T, error)) runner {
	return func(e *env, command string, args []string) error {
		switch command {
		case "encode":
			values := make([]T, 0, len(args))
			for _, a := range args {
				v, err := parse(a)
				if err != nil {
					return fmt.Errorf("parse %q: %w", a, err)
				}
				values = append(values, v)
			}
			var (
				b   []byte
				err error
			)
			if e.kind == "list" {
				c, cerr := colser.ListCodecOf(e.reg, elems)
				if cerr != nil {
					return cerr
				}
				b, err = c.Encode(values)
			} else {
				c, cerr := colser.SetCodecOf(e.reg, elems)
				if cerr != nil {
					return cerr
				}
				b, err = c.Encode(colser.SetOf(values...))
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(e.out, hex.EncodeToString(b))
			return err

		case "decode":
			b, err := hexArg(args)
			if err != nil {
				return err
			}
			var text string
			if e.kind == "list" {
				c, cerr := colser.ListCodecOf(e.reg, elems)
				if cerr != nil {
					return cerr
				}
				values, err := c.Decode(b)
				if err != nil {
					return err
				}
				text = c.Format(values)
			} else {
				c, cerr := colser.SetCodecOf(e.reg, elems)
				if cerr != nil {
					return cerr
				}
				s, err := c.Decode(b)
				if err != nil {
					return err
				}
				text = c.Format(s)
			}
			_, err = fmt.Fprintln(e.out, text)
			return err
		}
		return fmt.Errorf("%w: unknown command %q", errUsage, command)
	}
}

func inspect(w io.Writer, args []string) error {
	b, err := hexArg(args)
	if err != nil {
		return err
	}
	segments, err := frame.Unpack(b)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "count=%d bytes=%d\n", len(segments), len(b))
	for i, s := range segments {
		fmt.Fprintf(w, "  [%d] size=%d %s\n", i, len(s), hex.EncodeToString(s))
	}
	return nil
}

func hexArg(args []string) ([]byte, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("%w: expected one hex argument, got %d", errUsage, len(args))
	}
	b, err := hex.DecodeString(trimHexPrefix(args[0]))
	if err != nil {
		return nil, fmt.Errorf("decode hex: %w", err)
	}
	return b, nil
}

func parseString(s string) (string, error) { return s, nil }

func parseHexString(s string) (string, error) {
	b, err := hex.DecodeString(trimHexPrefix(s))
	return string(b), err
}

func trimHexPrefix(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}

func parseInt32(s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	return int32(v), err
}

func parseInt64(s string) (int64, error) { return strconv.ParseInt(s, 10, 64) }

func parseDouble(s string) (float64, error) { return strconv.ParseFloat(s, 64) }
