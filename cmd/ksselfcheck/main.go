// Command ksselfcheck is the embedder's startup probe for the one-sided
// KS threshold kernel: it runs onesidedks.CheckConstants() once and exits
// non-zero if any compiled-in constant has drifted from its expected bit
// pattern, per the kernel's own documented responsibility for the
// embedding program to self-check on startup.
package main

import (
	"log"
	"os"

	"onesidedks"
)

func main() {
	log.Printf("ksselfcheck: verifying onesidedks constant bit patterns")

	if mask := onesidedks.CheckConstants(); mask != 0 {
		log.Printf("onesidedks.CheckConstants() returned %#x: one or more constants do not match their expected bit pattern", mask)
		os.Exit(1)
	}

	log.Printf("ksselfcheck: all constants verified")
}
