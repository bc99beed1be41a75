//go:build windows

package activation

import (
	"errors"
	"fmt"
	"runtime"
	"syscall"
	"unsafe"

	ole "github.com/go-ole/go-ole"
	"golang.org/x/sys/windows"
)

const sFalse = 0x1

var (
	clsidApplicationActivationManager = ole.NewGUID("{45BA127D-10A8-46EA-8AB7-56EA9078943C}")
	iidIApplicationActivationManager  = ole.NewGUID("{2E941141-7F97-4756-BA1D-9DECDE894A3D}")
)

type iApplicationActivationManagerVtbl struct {
	ole.IUnknownVtbl
	ActivateApplication uintptr
	ActivateForFile     uintptr
	ActivateForProtocol uintptr
}

type iApplicationActivationManager struct {
	ole.IUnknown
}

func (m *iApplicationActivationManager) vtable() *iApplicationActivationManagerVtbl {
	return (*iApplicationActivationManagerVtbl)(unsafe.Pointer(m.RawVTable))
}

// comService holds an apartment on the current OS thread until Close.
type comService struct {
	aam *iApplicationActivationManager
}

// NewCOMActivator creates the shell's ApplicationActivationManager.
func NewCOMActivator() (Service, error) {
	runtime.LockOSThread()

	if err := ole.CoInitializeEx(0, ole.COINIT_APARTMENTTHREADED); err != nil {
		var oleErr *ole.OleError
		if !errors.As(err, &oleErr) || oleErr.Code() != sFalse {
			runtime.UnlockOSThread()
			return nil, fmt.Errorf("CoInitializeEx: %w", err)
		}
	}

	unk, err := ole.CreateInstance(clsidApplicationActivationManager, iidIApplicationActivationManager)
	if err != nil {
		ole.CoUninitialize()
		runtime.UnlockOSThread()
		return nil, fmt.Errorf("failed to create ApplicationActivationManager: %w", err)
	}

	return &comService{aam: (*iApplicationActivationManager)(unsafe.Pointer(unk))}, nil
}

func (s *comService) ActivateApplication(appID, arguments string, options Options) (int32, uint32, error) {
	id, err := windows.UTF16PtrFromString(appID)
	if err != nil {
		return 0, 0, err
	}
	var args *uint16
	if arguments != "" {
		if args, err = windows.UTF16PtrFromString(arguments); err != nil {
			return 0, 0, err
		}
	}

	var pid uint32
	hr, _, _ := syscall.SyscallN(s.aam.vtable().ActivateApplication,
		uintptr(unsafe.Pointer(s.aam)),
		uintptr(unsafe.Pointer(id)),
		uintptr(unsafe.Pointer(args)),
		uintptr(options),
		uintptr(unsafe.Pointer(&pid)),
	)
	return int32(uint32(hr)), pid, nil
}

func (s *comService) Close() error {
	s.aam.Release()
	ole.CoUninitialize()
	runtime.UnlockOSThread()
	return nil
}
