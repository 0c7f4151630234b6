package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"gonum.org/v1/gonum/spatial/r2"

	"clothsim/cloth"
	"clothsim/config"
)

var (
	title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	label = lipgloss.NewStyle().Foreground(lipgloss.Color("242")).Width(18)
	value = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	warn  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	box   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// report summarises a headless run.
type report struct {
	frames    int
	clicks    int
	torn      int
	active    int
	total     int
	maxStrain float64
	elapsed   time.Duration
}

func run(c *cloth.Cloth, frames, tears int, rng *rand.Rand) report {
	r := report{frames: frames, total: len(c.Constraints)}

	tearAt := make(map[int]int, tears)
	for i := 0; i < tears && frames > 0; i++ {
		tearAt[rng.Intn(frames)]++
	}

	start := time.Now()
	for f := 0; f < frames; f++ {
		for n := tearAt[f]; n > 0; n-- {
			// aim at a random link so clicks land on the cloth
			i := rng.Intn(len(c.Constraints))
			a, b := c.Endpoints(i)
			r.clicks++
			before := c.ActiveConstraints()
			c.Tear(r2.Add(a, r2.Scale(rng.Float64(), r2.Sub(b, a))))
			r.torn += before - c.ActiveConstraints()
		}
		c.Step()
	}
	r.elapsed = time.Since(start)

	r.active = c.ActiveConstraints()
	for i, con := range c.Constraints {
		if !con.Active || con.RestLength == 0 {
			continue
		}
		a, b := c.Endpoints(i)
		strain := math.Abs(r2.Norm(r2.Sub(b, a))-con.RestLength) / con.RestLength
		r.maxStrain = math.Max(r.maxStrain, strain)
	}
	return r
}

func (r report) String() string {
	row := func(k, v string) string {
		return lipgloss.JoinHorizontal(lipgloss.Top, label.Render(k), value.Render(v))
	}
	perFrame := time.Duration(0)
	if r.frames > 0 {
		perFrame = r.elapsed / time.Duration(r.frames)
	}
	strain := value.Render(fmt.Sprintf("%.2f%%", r.maxStrain*100))
	if r.maxStrain > 0.5 {
		strain = warn.Render(fmt.Sprintf("%.2f%%", r.maxStrain*100))
	}
	return box.Render(lipgloss.JoinVertical(lipgloss.Left,
		title.Render("cloth bench"),
		row("frames", fmt.Sprint(r.frames)),
		row("clicks", fmt.Sprint(r.clicks)),
		row("torn", fmt.Sprint(r.torn)),
		row("active links", fmt.Sprintf("%d/%d", r.active, r.total)),
		lipgloss.JoinHorizontal(lipgloss.Top, label.Render("max strain"), strain),
		row("elapsed", r.elapsed.String()),
		row("per frame", perFrame.String()),
	))
}

func main() {
	frames := flag.Int("frames", 600, "frames to simulate")
	tears := flag.Int("tears", 10, "random tear clicks spread over the run")
	seed := flag.Int64("seed", 1, "random seed for tear placement")
	envFile := flag.String("env", ".env", "dotenv file to load")
	flag.Parse()

	config.InitConfig(*envFile)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	c, err := cloth.New(cfg.Cloth)
	if err != nil {
		log.Fatalf("cloth: %v", err)
	}
	c.Resize(cfg.ViewWidth, cfg.ViewHeight)

	r := run(c, *frames, *tears, rand.New(rand.NewSource(*seed)))
	fmt.Fprintln(os.Stdout, r)
}
