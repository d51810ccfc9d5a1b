// This file is part of Framepace.
//
// Framepace is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Framepace is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Framepace.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/dustin/go-humanize"
	"github.com/hako/durafmt"

	"github.com/jetsetilly/framepace/emulation"
	"github.com/jetsetilly/framepace/logger"
	"github.com/jetsetilly/framepace/modalflag"
	"github.com/jetsetilly/framepace/performance"
	"github.com/jetsetilly/framepace/playmode"
	"github.com/jetsetilly/framepace/prefs"
	"github.com/jetsetilly/framepace/script"
	"github.com/jetsetilly/framepace/simulation"
	"github.com/jetsetilly/framepace/sound"
	"github.com/jetsetilly/framepace/statsview"
	"github.com/jetsetilly/framepace/terminal"
	"github.com/jetsetilly/framepace/userinput"
	"github.com/jetsetilly/framepace/version"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("PLAY", "PERFORMANCE", "PREFS", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "PLAY":
		err = play(md)

	case "PERFORMANCE":
		err = perform(md)

	case "PREFS":
		err = preferences(md)

	case "VERSION":
		fmt.Println(version.String())
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

func play(md *modalflag.Modes) error {
	md.NewMode()

	net := md.AddBool("net", false, "network play")
	mode := md.AddString("mode", "race", "game mode. empty for no mode in network play")
	players := md.AddInt("players", 1, "number of players")
	length := md.AddInt("length", 0, "frames in a game. the loop ends when the game ends")
	frames := md.AddInt("frames", 0, "stop after number of frames")
	prefsOverride := md.AddString("prefs", "", "preferences for this run. eg. option.maxfps::30; option.showfps::false")
	scriptFile := md.AddString("script", "", "run input script")
	replayFile := md.AddString("replay", "", "play back replay file")
	recordFile := md.AddString("record", "", "record player input to replay file")
	wav := md.AddString("wav", "", "record sound effects to wav file")
	stats := md.AddString("statsview", "", fmt.Sprintf("launch statsview server. eg. %s", statsview.DefaultAddress))
	dumpState := md.AddString("dumpstate", "", "write graph of play loop state to file on exit (graphviz dot format)")
	headless := md.AddBool("headless", false, "no keyboard and no display")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(os.Stdout, false)
	} else {
		logger.SetEcho(nil, false)
	}
	logger.Log(logger.Allow, "framepace", version.String())

	// values on the command line stack override values loaded from disk
	if *prefsOverride != "" {
		prefs.PushCommandLineStack(*prefsOverride)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				fmt.Printf("! unused preferences: %s\n", unused)
			}
		}()
	}

	pr, err := playmode.NewPreferences("")
	if err != nil {
		return err
	}

	cfg := simulation.Config{
		Players:        *players,
		Length:         *length,
		QuitOnGameOver: *length > 0,
		Mode:           *mode,
	}
	if *replayFile != "" {
		f, err := os.Open(*replayFile)
		if err != nil {
			return err
		}
		cfg.Replay, err = simulation.LoadReplay(f)
		f.Close()
		if err != nil {
			return err
		}
	}
	eng := simulation.NewEngine(cfg)

	var aud emulation.Audio = emulation.DiscardAudio{}
	if *wav != "" {
		rec := sound.NewRecorder(*wav)
		defer func() {
			if err := rec.End(); err != nil {
				fmt.Printf("* %v\n", err)
			}
		}()
		aud = rec
	}

	var output io.Writer = os.Stdout
	if *headless {
		output = io.Discard
	}

	queue := userinput.NewQueue()
	own := &owner{eng: eng}

	var loop *playmode.Loop
	var player *script.Player

	if *scriptFile != "" {
		f, err := os.Open(*scriptFile)
		if err != nil {
			return err
		}
		s, err := script.Load(f)
		f.Close()
		if err != nil {
			return err
		}
		player = script.NewPlayer(s, queue, func() { loop.Shutdown() })
		player.RequestMode = func(req emulation.ModeRequest) { loop.RequestMode(req) }
	}

	loop, err = playmode.NewLoop(playmode.Config{
		Engine:   eng,
		Surface:  terminal.NewSurface(output, eng.Picture),
		Owner:    own,
		Audio:    aud,
		NetLobby: lobby{},
		NetPlay:  *net,
		Prefs:    pr,
		Input:    queue,
		TickHook: func(frame int) {
			if player != nil {
				player.Tick(frame)
			}
			if *frames > 0 && frame >= *frames {
				loop.Shutdown()
			}
		},
	})
	if err != nil {
		return err
	}

	if *stats != "" {
		srv := statsview.Launch(os.Stdout, *stats)
		defer srv.Stop()
	}

	if !*headless {
		kbd, err := terminal.OpenKeyboard(terminal.DefaultDevice, queue)
		if err != nil {
			return err
		}
		defer kbd.Close()
		go func() {
			err := kbd.Service()
			if err != nil && loop.Running() {
				logger.Log(logger.Allow, "framepace", err)
			}
		}()
	}

	// #ctrlc
	stopInterrupt, _ := onInterrupt(loop.Shutdown)
	defer stopInterrupt()

	startTime := time.Now()
	err = loop.Run()
	elapsed := time.Since(startTime)
	if err != nil {
		return err
	}

	fmt.Printf("* %s frames in %s (%.1f fps measured, %d fps target)\n",
		humanize.Comma(int64(loop.Frames())),
		durafmt.Parse(elapsed).LimitFirstN(2),
		loop.Rate().Measured(), loop.Rate().Current())

	if *recordFile != "" {
		if err := saveRecording(eng, *recordFile); err != nil {
			return err
		}
		fmt.Printf("! recording saved to %s\n", *recordFile)
	}

	if *dumpState != "" {
		f, err := os.Create(*dumpState)
		if err != nil {
			return err
		}
		memviz.Map(f, loop)
		if err := f.Close(); err != nil {
			return err
		}
	}

	if own.quit {
		fmt.Println("! quit")
	}

	return nil
}

// onInterrupt calls shutdown when ctrl-c is pressed. The returned stop
// function ends the listening goroutine, after which the done channel is
// closed.
func onInterrupt(shutdown func()) (stop func(), done <-chan struct{}) {
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	d := make(chan struct{})
	go func() {
		defer close(d)
		if _, ok := <-intChan; ok {
			shutdown()
		}
	}()

	return func() {
		signal.Stop(intChan)
		close(intChan)
	}, d
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddDuration("duration", 5*time.Second, "run performance check for duration")
	leadtime := md.AddDuration("leadtime", performance.Leadtime, "time allowed for frame rate to settle before measuring")
	profile := md.AddString("profile", "NONE", "run performance check with profiling: CPU, MEM, TRACE, ALL (comma separated)")
	prefsOverride := md.AddString("prefs", "", "preferences for this run. eg. option.maxfps::0")
	players := md.AddInt("players", 1, "number of players")
	stats := md.AddString("statsview", "", fmt.Sprintf("launch statsview server. eg. %s", statsview.DefaultAddress))
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *log {
		logger.SetEcho(os.Stdout, false)
	} else {
		logger.SetEcho(nil, false)
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	if *prefsOverride != "" {
		prefs.PushCommandLineStack(*prefsOverride)
		defer prefs.PopCommandLineStack()
	}

	pr, err := playmode.NewPreferences("")
	if err != nil {
		return err
	}

	if *stats != "" {
		srv := statsview.Launch(os.Stdout, *stats)
		defer srv.Stop()
	}

	eng := simulation.NewEngine(simulation.Config{Players: *players, Mode: "race"})

	return performance.Check(os.Stdout, prf, playmode.Config{
		Engine:  eng,
		Surface: terminal.NewSurface(io.Discard, eng.Picture),
		Owner:   &owner{eng: eng},
		Prefs:   pr,
	}, *duration, *leadtime)
}

func saveRecording(eng *simulation.Engine, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := eng.Recording().Save(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func preferences(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("list preferences or set preferences with key::value arguments")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	pr, err := playmode.NewPreferences("")
	if err != nil {
		return err
	}

	if len(md.RemainingArgs()) == 0 {
		fmt.Print(pr.String())
		return nil
	}

	for _, arg := range md.RemainingArgs() {
		k, v, ok := strings.Cut(arg, "::")
		if !ok {
			return fmt.Errorf("preference %q is not in key::value form", arg)
		}
		if err := pr.Set(strings.TrimSpace(k), strings.TrimSpace(v)); err != nil {
			return err
		}
	}

	return pr.Save()
}

// owner of the play loop. there is no menu to return to so returning control
// does nothing but note the event
type owner struct {
	eng  *simulation.Engine
	quit bool
}

func (o *owner) ReturnControl() {
	logger.Log(logger.Allow, "framepace", "play loop returned control")
}

func (o *owner) Shutdown() {
	o.quit = true
}

func (o *owner) EnterMode(req emulation.ModeRequest) {
	switch req.Kind {
	case emulation.ModeEnter:
		o.eng.SetMode(req.Name)
	case emulation.ModeClear:
		o.eng.SetMode("")
	}
}

// there is no network lobby. the net play path runs against the local engine
type lobby struct{}

func (lobby) Shutdown() error {
	logger.Log(logger.Allow, "framepace", "lobby shutdown")
	return nil
}
