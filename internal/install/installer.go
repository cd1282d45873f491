package install

import (
	"log"
	"os/exec"
	"strings"
)

// Installer spawns the package-manager install step for a freshly generated
// project. The subprocess is fire-and-forget: the generation outcome never
// depends on its result, which is logged but not inspected.
type Installer struct {
	command string
	args    []string
}

// NewInstaller parses a command line such as "npm install". It returns nil
// when the command line is empty, which disables the install step.
func NewInstaller(commandLine string) *Installer {
	fields := strings.Fields(commandLine)
	if len(fields) == 0 {
		return nil
	}
	return &Installer{command: fields[0], args: fields[1:]}
}

// Start launches the install command with dir as its working directory and
// returns immediately. The process is reaped in the background.
func (i *Installer) Start(dir string) {
	cmd := exec.Command(i.command, i.args...)
	cmd.Dir = dir

	log.Printf("Starting install command in %s: %s", dir, cmd.String())
	if err := cmd.Start(); err != nil {
		log.Printf("WARN: install command failed to start in %s: %v", dir, err)
		return
	}

	go func() {
		if err := cmd.Wait(); err != nil {
			log.Printf("WARN: install command in %s exited with error: %v", dir, err)
		} else {
			log.Printf("Install command in %s completed.", dir)
		}
	}()
}
