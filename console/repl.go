package console

import (
	"context"
	"fmt"
	"math"
	"os"
	"os/signal"
	"syscall"
)

func readAddress(prompt string) uint16 {
	var a uint16
	fmt.Print(prompt)
	fmt.Scanf("%04x\n", &a)
	return a
}

// Repl drives an interactive debug session against the console: step one
// instruction at a time, set breakpoints, dump memory and registers, or let
// it run free until interrupted.
func (c *Console) Repl(ctx context.Context) {
	sigQuit := make(chan os.Signal, 1)
	signal.Notify(sigQuit, syscall.SIGINT, syscall.SIGTERM)

	breaks := make(map[uint16]struct{})

	for {
		fmt.Printf("PC=%04x A=%02x X=%02x Y=%02x SP=%02x P=%s cyc=%d\n\n",
			c.CPU.PC, c.CPU.A, c.CPU.X, c.CPU.Y, c.CPU.SP, c.CPU.StatusString(), c.CPU.TotalCycles)
		fmt.Println("(B)reak - add breakpoint")
		fmt.Println("(C)lear - clear breakpoints")
		fmt.Println("(R)un - run to completion or next breakpoint")
		fmt.Println("(S)tep - step the cpu one instruction")
		fmt.Println("R(e)set - hit the reset button")
		fmt.Println("(M)emory - display a memory range")
		fmt.Println("S(t)ack - show the top of the stack")
		fmt.Println("(P)C - set program counter")
		fmt.Println("PP(U) - show PPU register state")
		fmt.Println("(Q)uit - shut down")
		fmt.Printf("Choice: ")

		var in rune
		fmt.Scanf("%c\n", &in)

		switch in {
		case 'b', 'B':
			breaks[readAddress("Breakpoint (eg: ff15): ")] = struct{}{}
		case 'c', 'C':
			breaks = make(map[uint16]struct{})
		case 'p', 'P':
			c.CPU.PC = readAddress("Set PC to what address (eg: 0400)?: ")
		case 'q', 'Q':
			return
		case 'r', 'R':
			cctx, cancel := context.WithCancel(ctx)
			go func(ctx context.Context) {
				for {
					select {
					case <-sigQuit:
						cancel()
					case <-ctx.Done():
						return
					}
				}
			}(cctx)

			c.runUntil(cctx, breaks)
		case 's', 'S':
			c.Step()
		case 't', 'T':
			fmt.Println()
			base := uint16(0x0100) | uint16(c.CPU.SP)
			for i := uint16(0); i < 3; i++ {
				m := base + i
				fmt.Printf("0x%04x: 0x%02x ", m, c.MMU.Read(m))
				if m == 0x01ff {
					break
				}
			}
			fmt.Printf("\n\n")
		case 'u', 'U':
			fmt.Printf("%s\n\n", c.PPU)
		case 'e', 'E':
			c.Reset()
		case 'm', 'M':
			fmt.Println()
			low := readAddress("Low address (eg f00d): ")
			high := readAddress("High address (eg beef): ")
			fmt.Println()

			x := 1
			i := low
			for {
				fmt.Printf("0x%04x: 0x%02x ", i, c.MMU.Read(i))
				if x%5 == 0 {
					fmt.Println()
				}
				if i == high || i == math.MaxUint16 {
					break
				}
				x += 1
				i += 1
			}
			fmt.Printf("\n\n")
		}
	}
}

// runUntil steps the console until ctx is cancelled or PC lands on a
// breakpoint.
func (c *Console) runUntil(ctx context.Context, breaks map[uint16]struct{}) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
			c.Step()
			if _, hit := breaks[c.CPU.PC]; hit {
				return
			}
		}
	}
}
