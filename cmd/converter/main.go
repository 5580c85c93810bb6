package main

import (
	"flag"
	"os"
	"path/filepath"
	"strings"

	"github.com/matst80/diecast-finder/pkg/common"
	"github.com/matst80/diecast-finder/pkg/storage"
	"go.uber.org/zap"
)

func main() {
	in := flag.String("in", "models.csv", "semicolon separated input file")
	out := flag.String("out", "data/default/models.json", "catalog file to write, a .gz suffix writes gzipped json")
	flag.Parse()

	logger, err := common.NewLogger()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err = convert(*in, *out); err != nil {
		logger.Fatal("conversion failed", zap.String("in", *in), zap.Error(err))
	}
	logger.Info("done converting models", zap.String("in", *in), zap.String("out", *out))
}

func convert(in, out string) error {
	f, err := os.Open(in)
	if err != nil {
		return err
	}
	defer f.Close()

	models, err := ReadModels(f)
	if err != nil {
		return err
	}
	s := storage.NewDiskStorage("", filepath.Dir(out))
	name := filepath.Base(out)
	if strings.HasSuffix(name, ".gz") {
		return s.SaveGzippedJson(models, name)
	}
	return s.SaveJson(models, name)
}
