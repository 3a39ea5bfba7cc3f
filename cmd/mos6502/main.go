// Command mos6502 loads a raw binary image into memory and runs it,
// optionally single-stepping through a termbox-driven debugger the way the
// teacher's cmd/tests program does.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sort"

	term "github.com/nsf/termbox-go"
	"gopkg.in/urfave/cli.v2"

	"github.com/halden/mos6502/cpu"
	"github.com/halden/mos6502/internal/driver"
	"github.com/halden/mos6502/internal/dump"
	"github.com/halden/mos6502/internal/logger"
)

func main() {
	app := &cli.App{
		Name:    "mos6502",
		Usage:   "run a binary image against the interpreter",
		Version: "v0.0.1",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "rom",
				Aliases: []string{"r"},
				Usage:   "path to the binary image",
			},
			&cli.IntFlag{
				Name:    "start",
				Aliases: []string{"s"},
				Usage:   "start address",
				Value:   0,
			},
			&cli.IntFlag{
				Name:  "stop",
				Usage: "stop address (0 disables)",
				Value: 0,
			},
			&cli.BoolFlag{
				Name:    "step",
				Aliases: []string{"i"},
				Usage:   "single-step interactively from the start: each key press runs one instruction, Ctrl-C stops",
			},
			&cli.BoolFlag{
				Name:  "trap",
				Usage: "halt on a detected infinite loop",
			},
			&cli.StringFlag{
				Name:  "trace",
				Usage: "log level: off, error, info, step",
				Value: "info",
			},
		},
		Action: run,
	}

	sort.Sort(cli.FlagsByName(app.Flags))
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	romPath := c.String("rom")
	if romPath == "" {
		cli.ShowAppHelp(c)
		return cli.Exit("", 86)
	}

	image, err := loadROM(romPath)
	if err != nil {
		return cli.Exit(fmt.Sprintf("error loading ROM: %s", err), 1)
	}

	machine := cpu.New()
	cpu.PatchMemory(machine, 0, image)
	cpu.SetPC(machine, uint16(c.Int("start")))

	lg := logger.New(logger.LevelFromString(c.String("trace")), os.Stdout)
	d := driver.New(machine, lg)
	if stop := c.Int("stop"); stop != 0 {
		d.StopAt(uint16(stop))
	}
	d.EnableTrapDetection(c.Bool("trap"))

	lg.Info("starting at pc=%#04x", machine.PC)

	q := make(chan os.Signal, 1)
	signal.Notify(q, os.Interrupt)

	stepping := c.Bool("step")
	if stepping {
		if err := term.Init(); err != nil {
			return cli.Exit(fmt.Sprintf("error initializing termbox: %s", err), 1)
		}
		defer term.Close()
	}

runLoop:
	for {
		select {
		case <-q:
			lg.Info("interrupted")
			break runLoop
		default:
		}

		if stepping {
			ev := term.PollEvent()
			if ev.Type == term.EventKey {
				switch ev.Key {
				case term.KeyCtrlC:
					break runLoop
				}
			}
			fmt.Println(dump.Registers(machine))
		}

		halt, stepErr := d.Step()
		if halt != driver.Continue {
			if stepErr != nil {
				lg.Error("%s", stepErr)
			}
			break runLoop
		}
	}

	lg.Info("stopped after %d steps: %s", d.TotalSteps(), d.Halt())

	if d.Halt() != driver.HaltSuccess {
		return cli.Exit("", 1)
	}
	return nil
}

func loadROM(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, err
	}
	if stat.Size() > 0x10000 {
		return nil, fmt.Errorf("ROM too large: wanted at most 65536 bytes, got %d", stat.Size())
	}

	buf := make([]byte, stat.Size())
	if _, err := bufio.NewReader(file).Read(buf); err != nil {
		return nil, err
	}
	return buf, nil
}
