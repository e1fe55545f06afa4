package chemops

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/moleculab/go-chemops/internal/molfile"
	"github.com/moleculab/go-chemops/internal/process"
)

// Environment variables that configure the JVM bridge.
const (
	// EnvJavaBin overrides the Java binary used to launch the bridge.
	EnvJavaBin = "CHEMOPS_JAVA_BIN"

	// EnvClasspath locates the Marvin jars and the bridge class.
	// Falls back to CLASSPATH when unset.
	EnvClasspath = "CHEMOPS_CLASSPATH"

	// EnvJavaOpts holds extra JVM options, split on whitespace.
	EnvJavaOpts = "JAVA_OPTS"
)

// bridgeMainClass is the entry point of the JVM helper. It reads one JSON
// request per line on stdin and writes one JSON response per line on
// stdout.
const bridgeMainClass = "ChemBridge"

// maxResponseBytes bounds one bridge response line (base64 raster images
// of large canvases fit comfortably).
const maxResponseBytes = 64 << 20

// closeGracePeriod is how long Close waits for the JVM to exit after
// stdin is closed before killing the process group.
const closeGracePeriod = 2 * time.Second

// Compile-time interface check
var _ Engine = (*marvinEngine)(nil)

// marvinEngine drives the ChemAxon Marvin toolkit through a long-lived
// JVM subprocess. The process is launched lazily on first use and speaks
// newline-delimited JSON. Not safe for concurrent use; each Service owns
// its own instance.
type marvinEngine struct {
	timeout time.Duration
	bridge  *bridge
}

// newMarvinEngine creates a marvinEngine with the given per-call timeout.
func newMarvinEngine(timeout time.Duration) *marvinEngine {
	return &marvinEngine{timeout: timeout}
}

// bridge is one launch of the JVM helper. Every launch owns its own
// pipes, scanner, and stderr buffer: after a timeout the in-flight
// reader goroutine is abandoned mid-read, and it must not share any
// state with the bridge a later call launches.
type bridge struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	out    *bufio.Scanner
	stderr lockedBuffer
}

// lockedBuffer serializes the exec stderr copier against the reader
// goroutine, which may call String while the process is still dying.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (l *lockedBuffer) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.buf.Write(p)
}

func (l *lockedBuffer) String() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.buf.String()
}

// bridgeRequest is one operation sent to the JVM helper.
type bridgeRequest struct {
	Op        string `json:"op"`
	Structure string `json:"structure,omitempty"`
	Format    string `json:"format,omitempty"`

	// Protonation parameters.
	OutputFormat  string  `json:"outputFormat,omitempty"`
	PH            float64 `json:"ph"`
	MajorTautomer bool    `json:"majorTautomer"`
	KeepHydrogens bool    `json:"keepHydrogens"`
	Dearomatize   bool    `json:"dearomatize"`

	// Rendering parameters.
	RenderSpec    string          `json:"renderSpec,omitempty"`
	LabelFontSize float64         `json:"labelFontSize,omitempty"`
	Labels        []RenderLabel   `json:"labels,omitempty"`
	AtomSets      []RenderAtomSet `json:"atomSets,omitempty"`
	BondSets      []RenderBondSet `json:"bondSets,omitempty"`
}

// bridgeResponse is one reply from the JVM helper.
type bridgeResponse struct {
	OK        bool   `json:"ok"`
	Error     string `json:"error,omitempty"`
	Structure string `json:"structure,omitempty"`
	Molblock  string `json:"molblock,omitempty"`
	Image     []byte `json:"image,omitempty"` // base64 on the wire
}

// ensureBridge lazily launches the JVM helper.
func (e *marvinEngine) ensureBridge() (*bridge, error) {
	if e.bridge != nil {
		return e.bridge, nil
	}

	bin := os.Getenv(EnvJavaBin)
	if bin == "" {
		bin = "java"
	}

	args := splitJavaOpts(os.Getenv(EnvJavaOpts))
	if cp := resolveClasspath(); cp != "" {
		args = append(args, "-cp", cp)
	}
	args = append(args, bridgeMainClass)

	b := &bridge{}
	cmd := exec.Command(bin, args...) // #nosec G204 -- binary and classpath come from the operator's environment
	cmd.SysProcAttr = process.GroupAttr()
	cmd.Stderr = &b.stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEngineStart, err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEngineStart, err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEngineStart, err)
	}

	sc := bufio.NewScanner(stdout)
	sc.Buffer(make([]byte, 0, 64*1024), maxResponseBytes)

	b.cmd = cmd
	b.stdin = stdin
	b.out = sc
	e.bridge = b
	return b, nil
}

// roundTrip writes one request line and reads one response line.
func (b *bridge) roundTrip(payload []byte) (*bridgeResponse, error) {
	if _, err := b.stdin.Write(payload); err != nil {
		return nil, fmt.Errorf("%w: writing request: %v", ErrEngineProtocol, err)
	}
	if !b.out.Scan() {
		err := b.out.Err()
		msg := strings.TrimSpace(b.stderr.String())
		if msg == "" && err != nil {
			msg = err.Error()
		}
		return nil, fmt.Errorf("%w: bridge exited: %s", ErrEngineProtocol, msg)
	}
	var resp bridgeResponse
	if err := json.Unmarshal(b.out.Bytes(), &resp); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", ErrEngineProtocol, err)
	}
	return &resp, nil
}

// call sends one request and waits for its response, enforcing the
// context deadline and the engine timeout. On timeout or cancellation the
// JVM is killed; the next call relaunches it.
func (e *marvinEngine) call(ctx context.Context, req bridgeRequest) (*bridgeResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b, err := e.ensureBridge()
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("%w: encoding request: %v", ErrEngineProtocol, err)
	}
	payload = append(payload, '\n')

	type outcome struct {
		resp *bridgeResponse
		err  error
	}
	done := make(chan outcome, 1)

	// The goroutine touches only its own bridge. If it is abandoned
	// below, the bridge goes with it; a relaunch starts from scratch.
	go func() {
		resp, err := b.roundTrip(payload)
		done <- outcome{resp: resp, err: err}
	}()

	timeout := e.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case o := <-done:
		return o.resp, o.err
	case <-ctx.Done():
		e.shutdown()
		return nil, ctx.Err()
	case <-timer.C:
		e.shutdown()
		return nil, fmt.Errorf("%w: no response within %s", ErrEngineProtocol, timeout)
	}
}

// Parse reads a structure and snapshots its topology via a molblock
// export from the bridge.
func (e *marvinEngine) Parse(ctx context.Context, structure, format string) (*Molecule, error) {
	resp, err := e.call(ctx, bridgeRequest{Op: "parse", Structure: structure, Format: format})
	if err != nil {
		return nil, err
	}
	if !resp.OK {
		return nil, fmt.Errorf("%w: %s", ErrParse, resp.Error)
	}
	top, err := molfile.Parse(resp.Molblock)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return NewMolecule(top.Symbols, top.Bonds), nil
}

// MajorMicrospecies computes the dominant protonation form.
func (e *marvinEngine) MajorMicrospecies(ctx context.Context, req MicrospeciesRequest) (string, error) {
	resp, err := e.call(ctx, bridgeRequest{
		Op:            "protonate",
		Structure:     req.Structure,
		Format:        req.InputFormat,
		OutputFormat:  req.OutputFormat,
		PH:            req.PH,
		MajorTautomer: req.MajorTautomer,
		KeepHydrogens: req.KeepHydrogens,
		Dearomatize:   req.Dearomatize,
	})
	if err != nil {
		return "", err
	}
	if !resp.OK {
		return "", fmt.Errorf("%w: %s", ErrProtonation, resp.Error)
	}
	return resp.Structure, nil
}

// Render draws the structure with the resolved annotations.
func (e *marvinEngine) Render(ctx context.Context, req RenderRequest) ([]byte, error) {
	resp, err := e.call(ctx, bridgeRequest{
		Op:            "render",
		Structure:     req.Structure,
		Format:        req.Format,
		RenderSpec:    exportSpec(req),
		LabelFontSize: req.LabelFontSize,
		Labels:        req.Labels,
		AtomSets:      req.AtomSets,
		BondSets:      req.BondSets,
	})
	if err != nil {
		return nil, err
	}
	if !resp.OK {
		return nil, fmt.Errorf("%w: %s", ErrRender, resp.Error)
	}
	return resp.Image, nil
}

// Close shuts the bridge down, first politely (EOF on stdin), then by
// killing the process group.
func (e *marvinEngine) Close() error {
	b := e.bridge
	if b == nil {
		return nil
	}
	e.bridge = nil
	b.stdin.Close()

	waited := make(chan error, 1)
	go func() { waited <- b.cmd.Wait() }()

	select {
	case <-waited:
	case <-time.After(closeGracePeriod):
		process.KillProcessGroup(b.cmd.Process.Pid)
		<-waited
	}
	return nil
}

// shutdown kills the bridge after a timeout or cancellation; the pipe is
// in an unknown state, so the process cannot be reused.
func (e *marvinEngine) shutdown() {
	b := e.bridge
	if b == nil {
		return
	}
	e.bridge = nil
	b.stdin.Close()
	process.KillProcessGroup(b.cmd.Process.Pid)
	go func() { _ = b.cmd.Wait() }()
}

// exportSpec assembles the exporter format string: monochrome scheme,
// transparent background, capped scale, zero margin, requested canvas,
// and for svg without an XML header the headless flag.
func exportSpec(req RenderRequest) string {
	var b strings.Builder
	b.WriteString(req.ImageFormat)
	b.WriteString(":mono,#00ffffff,transbg,maxscale1000,marginSize0")
	if req.ShowAtomNumbers {
		b.WriteString(",anum")
	}
	fmt.Fprintf(&b, ",w%d,h%d", req.Width, req.Height)
	if !req.IncludeXMLHeader && req.ImageFormat == ImageSVG {
		b.WriteString(",headless")
	}
	return b.String()
}

// splitJavaOpts splits JAVA_OPTS on runs of whitespace.
func splitJavaOpts(opts string) []string {
	return strings.Fields(opts)
}

// resolveClasspath prefers the chemops-specific classpath over the
// ambient CLASSPATH.
func resolveClasspath() string {
	if cp := os.Getenv(EnvClasspath); cp != "" {
		return cp
	}
	return os.Getenv("CLASSPATH")
}
