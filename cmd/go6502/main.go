// Command go6502 loads a raw 6502 program image and either runs it to
// completion or drops into an interactive single-step debugger.
package main

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/urfave/cli.v2"

	"github.com/mchacon/go6502core/cpu"
	"github.com/mchacon/go6502core/debugger"
)

func main() {
	app := &cli.App{
		Name:    "go6502",
		Usage:   "Run or debug a raw 6502 program image",
		Version: "v0.1.0",
		Commands: []*cli.Command{
			{
				Name:   "run",
				Usage:  "Load a program and run it to completion (BRK halts)",
				Flags:  loadFlags(),
				Action: runAction,
			},
			{
				Name:   "debug",
				Usage:  "Load a program and single-step it in a terminal UI",
				Flags:  loadFlags(),
				Action: debugAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("go6502: %v", err)
	}
}

func loadFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "program",
			Aliases: []string{"p"},
			Usage:   "path to the raw program image",
		},
		&cli.UintFlag{
			Name:    "base",
			Aliases: []string{"b"},
			Usage:   "address the program is loaded at and the reset vector points to",
			Value:   0x0600,
		},
	}
}

func loadChip(c *cli.Context) (*cpu.Chip, error) {
	path := c.String("program")
	if path == "" {
		cli.ShowSubcommandHelp(c)
		return nil, cli.Exit("--program is required", 86)
	}
	program, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading program: %w", err)
	}

	chip := cpu.New()
	base := uint16(c.Uint("base"))
	if err := chip.Load(program, base); err != nil {
		return nil, fmt.Errorf("loading program: %w", err)
	}
	chip.Reset()
	return chip, nil
}

func runAction(c *cli.Context) error {
	chip, err := loadChip(c)
	if err != nil {
		return err
	}
	if err := chip.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	fmt.Printf("halted: A=%02X X=%02X Y=%02X P=%02X S=%02X PC=%04X\n",
		chip.A, chip.X, chip.Y, chip.P, chip.S, chip.PC)
	return nil
}

func debugAction(c *cli.Context) error {
	chip, err := loadChip(c)
	if err != nil {
		return err
	}
	return debugger.Run(chip)
}
