package main

import (
	"flag"
	"log"
	"time"

	"ibvertex/watch"
)

func main() {
	cfg := watch.DefaultConfig()
	var pid int

	flag.IntVar(&pid, "Pid", 0,
		"PID of the simulation's root process. Required.")
	flag.Float64Var(&cfg.LimitMB, "LimitMB", 0,
		"Kill the tree when total used system memory exceeds this many "+
			"MB. 0 disables.")
	flag.Float64Var(&cfg.TreeLimitMB, "TreeLimitMB", 0,
		"Kill the tree when its summed RSS exceeds this many MB. "+
			"0 disables.")
	flag.DurationVar(&cfg.Interval, "Interval", cfg.Interval,
		"Polling interval.")
	flag.DurationVar(&cfg.Grace, "Grace", cfg.Grace,
		"Time between SIGTERM and SIGKILL.")
	flag.StringVar(&cfg.LogPath, "Log", "",
		"Append CSV memory samples (time,sys_used_mb,tree_rss_mb) to "+
			"this file.")
	flag.BoolVar(&cfg.Notify, "Notify", false,
		"Send a desktop notification when a limit trips.")

	flag.Parse()

	if pid <= 0 {
		log.Fatal("Must supply a positive -Pid.")
	}
	if cfg.LimitMB <= 0 && cfg.TreeLimitMB <= 0 {
		log.Fatal("Must supply a positive -LimitMB or -TreeLimitMB.")
	}
	cfg.PID = int32(pid)

	start := time.Now()
	if err := watch.Run(cfg); err != nil {
		log.Fatal(err.Error())
	}
	log.Printf("Watchdog finished after %v.", time.Since(start).Round(time.Second))
}
