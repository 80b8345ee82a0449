package utils

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

type InputUtils struct {
	in  io.Reader
	out io.Writer
}

func NewInputUtils() *InputUtils {
	return &InputUtils{in: os.Stdin, out: os.Stdout}
}

// AskConfirmation asks user for yes/no confirmation. Anything other than
// y/yes, including end of input, counts as no.
func (i *InputUtils) AskConfirmation(message string, force bool) bool {
	if force {
		return true
	}
	fmt.Fprintf(i.out, "%s (y/N): ", message)
	response, _ := bufio.NewReader(i.in).ReadString('\n')
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
