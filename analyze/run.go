package analyze

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/ianaindex"

	"cssfe/archive"
	"cssfe/common"
	"cssfe/config"
	"cssfe/cst"
	"cssfe/input"
	"cssfe/render"
	"cssfe/state"
	"cssfe/tokenizer"
)

// Stdin is the source name which makes program read stylesheet from standard input.
const Stdin = "-"

// job describes what to do with every stylesheet found in source.
type job struct {
	tokensOnly bool
	entry      common.Entry
	format     common.OutputFmt
	opts       render.Options
	// dst is output directory, when empty results go to out
	dst string
	in  io.Reader
	out io.Writer
	// multi is set when source may produce more than one result
	multi bool
}

// Tokenize is action for "tokenize" subcommand.
func Tokenize(ctx context.Context, cmd *cli.Command) error {
	return run(ctx, cmd, true)
}

// Parse is action for "parse" subcommand.
func Parse(ctx context.Context, cmd *cli.Command) error {
	return run(ctx, cmd, false)
}

func run(ctx context.Context, cmd *cli.Command, tokensOnly bool) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named(cmd.Name)

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		src = Stdin
	}
	if src != Stdin {
		if src, err = filepath.Abs(src); err != nil {
			return err
		}
	}

	dst := cmd.Args().Get(1)
	if len(dst) > 0 {
		if dst, err = filepath.Abs(dst); err != nil {
			return err
		}
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	j, err := newJob(env.Cfg, cmd, tokensOnly)
	if err != nil {
		return err
	}
	j.dst, j.in, j.out = dst, os.Stdin, os.Stdout
	j.opts.Color = j.opts.Color && len(dst) == 0 && j.format == common.OutputFmtText && config.EnableColorOutput(os.Stdout)

	if enc := cmd.String("encoding"); len(enc) > 0 {
		if _, name := charset.Lookup(enc); len(name) == 0 {
			log.Warn("Unknown input encoding requested, keeping configured one",
				zap.String("requested", enc), zap.String("encoding", env.Cfg.Input.Encoding))
		} else {
			env.Cfg.Input.Encoding = name
		}
	}

	env.Overwrite = cmd.Bool("overwrite")

	// Since zip "standard" does not define file name encoding we may need to
	// force archaic code page for old archives
	cp := cmd.String("force-zip-cp")
	if len(cp) > 0 {
		env.CodePage, err = ianaindex.IANA.Encoding(cp)
		if err != nil || env.CodePage == nil {
			log.Warn("Unknown zip file name character set. Ignoring...", zap.String("charset", cp), zap.Error(err))
			env.CodePage = nil
		} else {
			n, _ := ianaindex.IANA.Name(env.CodePage)
			log.Debug("Forcefully converting all non UTF-8 file names in archives", zap.String("charset", n))
		}
	}

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst),
		zap.Stringer("format", j.format), zap.Stringer("entry", j.entry), zap.Bool("tokens", j.tokensOnly))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, src, j, log)
}

// newJob merges configuration with command line flags. Flags win.
func newJob(cfg *config.Config, cmd *cli.Command, tokensOnly bool) (*job, error) {
	j := &job{
		tokensOnly: tokensOnly,
		entry:      cfg.Parser.Entry,
		format:     cfg.Output.Format,
		opts: render.Options{
			Positions: cfg.Output.Positions,
			Comments:  cfg.Output.Comments,
			Color:     cfg.Output.Color,
		},
	}

	var err error
	if cmd.IsSet("entry") {
		if j.entry, err = common.ParseEntry(cmd.String("entry")); err != nil {
			return nil, fmt.Errorf("unknown parser entry point: %w", err)
		}
	}
	if cmd.IsSet("format") {
		if j.format, err = common.ParseOutputFmt(cmd.String("format")); err != nil {
			return nil, fmt.Errorf("unknown output format: %w", err)
		}
	}
	if cmd.IsSet("positions") {
		j.opts.Positions = cmd.Bool("positions")
	}
	if cmd.Bool("no-comments") {
		j.opts.Comments = false
	}
	if cmd.Bool("no-color") {
		j.opts.Color = false
	}
	return j, nil
}

// process handles the core logic independently of CLI framework. It
// determines the input type (standard input, directory, archive, or single
// file) and processes accordingly.
func process(ctx context.Context, src string, j *job, log *zap.Logger) error {
	if src == Stdin {
		return processSheet(ctx, j.in, "stdin", j, log)
	}

	var head, tail string
	for head = src; len(head) != 0; head, tail = filepath.Split(head) {
		if err := ctx.Err(); err != nil {
			return err
		}

		head = strings.TrimSuffix(head, string(filepath.Separator))

		fi, err := os.Stat(head)
		if err != nil {
			// does not exists - probably path in archive
			continue
		}

		if fi.Mode().IsDir() {
			if len(tail) != 0 {
				// directory cannot have tail - it would be simple file
				return fmt.Errorf("input source was not found (%s) => (%s)", head, strings.TrimPrefix(src, head))
			}
			j.multi = true
			return processDir(ctx, head, j, log)
		}

		if !fi.Mode().IsRegular() {
			return fmt.Errorf("unexpected path mode for (%s) => (%s)", head, strings.TrimPrefix(src, head))
		}

		isArchive, err := archive.IsArchive(head)
		if err != nil {
			// checking format - but cannot open target file
			return fmt.Errorf("unable to check archive type: %w", err)
		}
		if isArchive {
			// we need to look inside to see if path makes sense
			tail = strings.TrimPrefix(strings.TrimPrefix(src, head), string(filepath.Separator))
			j.multi = true
			return processArchive(ctx, head, filepath.ToSlash(tail), "", j, log)
		}

		if len(tail) != 0 {
			return fmt.Errorf("input source was not found (%s) => (%s)", head, strings.TrimPrefix(src, head))
		}
		// explicitly named file is processed regardless of its extension
		file, err := os.Open(head)
		if err != nil {
			return fmt.Errorf("unable to process file: %w", err)
		}
		defer file.Close()
		return processSheet(ctx, file, filepath.Base(head), j, log)
	}
	return fmt.Errorf("input source was not found (%s)", src)
}

// summarize turns accumulated per stylesheet errors into a single one.
func summarize(errs error, count int, where string) error {
	if errs == nil {
		return nil
	}
	return fmt.Errorf("unable to process %d of %d sources in %s: %w", len(multierr.Errors(errs)), count, where, errs)
}

// processDir walks directory tree finding stylesheets and archives and
// processes them. Failure of a single stylesheet does not stop the walk.
func processDir(ctx context.Context, dir string, j *job, log *zap.Logger) error {
	env := state.EnvFromContext(ctx)

	var (
		count int
		errs  error
	)
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err != nil {
			log.Warn("Skipping path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rel := strings.TrimPrefix(strings.TrimPrefix(path, dir), string(filepath.Separator))

		if !archive.HasExtension(path, env.Cfg.Input.Extensions) {
			isArchive, err := archive.IsArchive(path)
			if err != nil {
				log.Warn("Skipping file", zap.String("file", path), zap.Error(err))
				return nil
			}
			if !isArchive {
				log.Debug("Skipping file, not recognized as stylesheet or archive", zap.String("file", path))
				return nil
			}
			count++
			if err := processArchive(ctx, path, "", filepath.Dir(rel), j, log); err != nil {
				log.Error("Unable to process archive", zap.String("file", path), zap.Error(err))
				errs = multierr.Append(errs, err)
			}
			return nil
		}

		count++

		file, err := os.Open(path)
		if err != nil {
			log.Error("Unable to process file", zap.String("file", path), zap.Error(err))
			errs = multierr.Append(errs, err)
			return nil
		}
		defer file.Close()

		if err := processSheet(ctx, file, rel, j, log); err != nil {
			log.Error("Unable to process file", zap.String("file", path), zap.Error(err))
			errs = multierr.Append(errs, err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	if count == 0 && errs == nil {
		log.Debug("Nothing to process", zap.String("dir", dir))
	}
	return summarize(errs, count, dir)
}

// processArchive walks all files inside archive, finds stylesheets under
// "pathIn" and processes them. "pathOut" is prepended to names inside archive
// to form output names.
func processArchive(ctx context.Context, path, pathIn, pathOut string, j *job, log *zap.Logger) error {
	env := state.EnvFromContext(ctx)

	var (
		count int
		errs  error
	)
	err := archive.Walk(path, pathIn, env.Cfg.Input.Extensions, func(arc string, f *zip.File) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		count++

		name, err := archive.EntryName(f, env.CodePage)
		if err != nil {
			n, _ := ianaindex.IANA.Name(env.CodePage)
			log.Warn("Unable to convert archive name from specified encoding",
				zap.String("charset", n), zap.String("path", f.FileHeader.Name), zap.Error(err))
			name = f.FileHeader.Name
		}
		if !archive.IsLocalName(name) {
			err := fmt.Errorf("zip entry %q: unsafe path after name decoding", name)
			log.Error("Unable to process file in archive", zap.String("archive", arc), zap.String("file", name), zap.Error(err))
			errs = multierr.Append(errs, err)
			return nil
		}

		r, err := f.Open()
		if err != nil {
			log.Error("Unable to process file in archive", zap.String("archive", arc), zap.String("file", name), zap.Error(err))
			errs = multierr.Append(errs, err)
			return nil
		}
		defer r.Close()

		if err := processSheet(ctx, r, filepath.Join(pathOut, filepath.FromSlash(name)), j, log); err != nil {
			log.Error("Unable to process file in archive", zap.String("archive", arc), zap.String("file", name), zap.Error(err))
			errs = multierr.Append(errs, err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	if count == 0 {
		log.Debug("Nothing to process", zap.String("archive", path))
	}
	return summarize(errs, count, path)
}

// processSheet handles single stylesheet. "src" is the source name relative
// to the original path, for files given directly it is just base file name.
func processSheet(ctx context.Context, r io.Reader, src string, j *job, log *zap.Logger) (rerr error) {
	env := state.EnvFromContext(ctx)

	log.Debug("Stylesheet processing starting", zap.String("from", src))
	defer func(start time.Time) {
		if r := recover(); r != nil {
			log.Error("Stylesheet processing ended with panic",
				zap.Any("panic", r), zap.Duration("elapsed", time.Since(start)), zap.ByteString("stack", debug.Stack()))
			rerr = fmt.Errorf("processing panic: %v", r)
			return
		}
		log.Debug("Stylesheet processing completed", zap.String("from", src), zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("unable to read %s: %w", src, err)
	}
	env.Rpt.StoreData("input/"+filepath.ToSlash(src), data)

	text, enc, err := input.Decode(data, env.Cfg.Input.Encoding)
	if err != nil {
		return err
	}
	log.Debug("Stylesheet decoded", zap.String("from", src), zap.String("encoding", enc), zap.Int("bytes", len(data)))

	tokens := tokenizer.Tokenize(text)

	var result any = tokens
	if !j.tokensOnly {
		if result, err = Analyze(env.Parser, tokens, j.entry, src); err != nil {
			return fmt.Errorf("unable to parse %s: %w", src, err)
		}
		if sheet, ok := result.(*cst.Stylesheet); ok && len(sheet.Warnings) > 0 {
			log.Warn("Stylesheet has syntax errors, affected parts were dropped",
				zap.String("from", src), zap.Int("count", len(sheet.Warnings)), zap.Strings("errors", sheet.Warnings))
		}
	}

	out, err := renderResult(result, j)
	if err != nil {
		return err
	}
	return writeResult(ctx, out, src, j, log)
}

func renderResult(result any, j *job) ([]byte, error) {
	switch j.format {
	case common.OutputFmtText:
		s, err := render.Text(result, j.opts)
		return []byte(s), err
	case common.OutputFmtYaml:
		return render.YAML(result, j.opts)
	default:
		return nil, fmt.Errorf("unsupported output format %q", j.format)
	}
}

// writeResult sends rendered result to output stream or to the file under
// destination directory keeping source relative path.
func writeResult(ctx context.Context, out []byte, src string, j *job, log *zap.Logger) error {
	env := state.EnvFromContext(ctx)

	if len(j.dst) == 0 {
		if j.multi {
			header := "==> " + src + " <==\n"
			if j.format == common.OutputFmtYaml {
				header = "--- # " + src + "\n"
			}
			if _, err := io.WriteString(j.out, header); err != nil {
				return err
			}
		}
		_, err := j.out.Write(out)
		return err
	}

	outputName := filepath.Join(j.dst, src+j.format.Ext())
	if _, err := os.Stat(outputName); err == nil {
		if !env.Overwrite {
			return fmt.Errorf("output file already exists: %s", outputName)
		}
		log.Warn("Overwriting existing file", zap.String("file", outputName))
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	} else if err := os.MkdirAll(filepath.Dir(outputName), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}

	if err := os.WriteFile(outputName, out, 0644); err != nil {
		return fmt.Errorf("unable to write result: %w", err)
	}
	env.Rpt.Store("result/"+filepath.ToSlash(src)+j.format.Ext(), outputName)
	return nil
}
