/*package watch monitors memory while an external simulation runs, logs
the samples to CSV, and kills the simulation's process tree if a limit is
exceeded.

The watchdog shares nothing with the generation tools: it is an
independently scheduled polling loop whose only interactions are
process-existence checks and signal delivery, both idempotent.
*/
package watch

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gen2brain/beeep"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"
)

const mb = 1 << 20

// Config controls a watchdog run.
type Config struct {
	// PID is the root of the simulation's process tree.
	PID int32

	// LimitMB trips on total used system memory; TreeLimitMB trips on the
	// RSS summed over the watched tree. Zero disables a limit.
	LimitMB     float64
	TreeLimitMB float64

	// Interval between samples.
	Interval time.Duration
	// Grace is how long the tree gets between SIGTERM and SIGKILL.
	Grace time.Duration

	// LogPath appends one CSV sample line per poll; empty disables.
	LogPath string
	// Notify sends a desktop notification when a limit trips.
	Notify bool
}

// DefaultConfig polls every 5s and allows a 10s graceful shutdown.
func DefaultConfig() Config {
	return Config{Interval: 5 * time.Second, Grace: 10 * time.Second}
}

// Run polls until the target process exits or a memory limit trips. A
// target that is already gone, or a memory metric that cannot be read,
// ends the run normally: the watchdog's job is over either way.
func Run(cfg Config) error {
	if cfg.Interval <= 0 {
		return fmt.Errorf("'Interval' must be positive, got %v", cfg.Interval)
	}

	var logW *bufio.Writer
	if cfg.LogPath != "" {
		f, err := openLog(cfg.LogPath)
		if err != nil {
			return err
		}
		defer f.Close()
		logW = bufio.NewWriter(f)
		defer logW.Flush()
	}

	proc, err := process.NewProcess(cfg.PID)
	if err != nil {
		log.Printf("Process %d is not running; nothing to watch.", cfg.PID)
		return nil
	}

	for {
		running, err := proc.IsRunning()
		if err != nil || !running {
			log.Printf("Process %d exited; watchdog done.", cfg.PID)
			return nil
		}

		vm, err := mem.VirtualMemory()
		if err != nil {
			log.Printf("Cannot read system memory (%s); watchdog done.",
				err.Error())
			return nil
		}
		usedMB := float64(vm.Used) / mb
		rssMB := treeRSS(proc)

		if logW != nil {
			fmt.Fprintf(logW, "%d,%.1f,%.1f\n",
				time.Now().Unix(), usedMB, rssMB)
			if err := logW.Flush(); err != nil {
				return err
			}
		}

		if cfg.LimitMB > 0 && usedMB > cfg.LimitMB {
			return trip(cfg, proc, fmt.Sprintf(
				"system memory %.0f MB exceeds the %.0f MB limit",
				usedMB, cfg.LimitMB,
			))
		}
		if cfg.TreeLimitMB > 0 && rssMB > cfg.TreeLimitMB {
			return trip(cfg, proc, fmt.Sprintf(
				"process tree RSS %.0f MB exceeds the %.0f MB limit",
				rssMB, cfg.TreeLimitMB,
			))
		}

		time.Sleep(cfg.Interval)
	}
}

// openLog opens the CSV log for appending, writing the header when the
// file is new.
func openLog(path string) (*os.File, error) {
	info, err := os.Stat(path)
	fresh := err != nil || info.Size() == 0

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, err
	}
	if fresh {
		if _, err := fmt.Fprintln(f, "time,sys_used_mb,tree_rss_mb"); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}

// trip logs the reason, optionally notifies, and escalates signals.
func trip(cfg Config, root *process.Process, reason string) error {
	log.Printf("Memory limit tripped: %s. Terminating process tree %d.",
		reason, root.Pid)
	if cfg.Notify {
		// Notification failure must not stop the kill.
		_ = beeep.Alert("ibvertex_watch",
			reason+"; terminating the simulation", "")
	}
	return killTree(root, cfg.Grace)
}

// gatherTree returns root plus all its live descendants. Children can
// exit between listing and use, so lookup errors just truncate the list.
func gatherTree(root *process.Process) []*process.Process {
	procs := []*process.Process{root}
	for at := 0; at < len(procs); at++ {
		children, err := procs[at].Children()
		if err != nil {
			continue
		}
		procs = append(procs, children...)
	}
	return procs
}

// treeRSS sums resident memory over the process tree, in MB. Processes
// that disappear mid-walk count as zero.
func treeRSS(root *process.Process) float64 {
	total := uint64(0)
	for _, p := range gatherTree(root) {
		info, err := p.MemoryInfo()
		if err != nil {
			continue
		}
		total += info.RSS
	}
	return float64(total) / mb
}

// killTree sends SIGTERM to every process in the tree, waits out the
// grace period, then SIGKILLs the survivors. Both signals are safe to
// send to processes that already exited.
func killTree(root *process.Process, grace time.Duration) error {
	procs := gatherTree(root)
	for _, p := range procs {
		_ = p.Terminate()
	}

	deadline := time.Now().Add(grace)
	for time.Now().Before(deadline) {
		if !anyRunning(procs) {
			log.Printf("Process tree %d exited cleanly.", root.Pid)
			return nil
		}
		time.Sleep(200 * time.Millisecond)
	}

	for _, p := range procs {
		if running, err := p.IsRunning(); err == nil && running {
			log.Printf("Process %d survived SIGTERM; killing.", p.Pid)
			_ = p.Kill()
		}
	}
	return nil
}

func anyRunning(procs []*process.Process) bool {
	for _, p := range procs {
		if running, err := p.IsRunning(); err == nil && running {
			return true
		}
	}
	return false
}
