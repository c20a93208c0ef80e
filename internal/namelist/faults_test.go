package namelist

import (
	"os"

	"github.com/spf13/afero"
)

// faultyFs injects errors into the files it hands out.
type faultyFs struct {
	afero.Fs
	openFileErr error
	readErr     error
	writeErr    error
	closeErr    error
}

func (f *faultyFs) Open(name string) (afero.File, error) {
	file, err := f.Fs.Open(name)
	if err != nil {
		return nil, err
	}
	return &faultyFile{File: file, fs: f}, nil
}

func (f *faultyFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	if f.openFileErr != nil && flag&os.O_WRONLY != 0 {
		return nil, f.openFileErr
	}
	file, err := f.Fs.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	if flag&os.O_WRONLY == 0 {
		return file, nil
	}
	return &faultyFile{File: file, fs: f, writable: true}, nil
}

type faultyFile struct {
	afero.File
	fs       *faultyFs
	writable bool
}

func (f *faultyFile) Read(p []byte) (int, error) {
	if f.fs.readErr != nil {
		return 0, f.fs.readErr
	}
	return f.File.Read(p)
}

func (f *faultyFile) Write(p []byte) (int, error) {
	if f.fs.writeErr != nil {
		return 0, f.fs.writeErr
	}
	return f.File.Write(p)
}

func (f *faultyFile) Close() error {
	err := f.File.Close()
	if f.writable && f.fs.closeErr != nil {
		return f.fs.closeErr
	}
	return err
}
