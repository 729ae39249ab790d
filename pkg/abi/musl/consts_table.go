// Copyright 2026 The muslabi Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package musl

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Constant describes one constant declared by this package.
type Constant struct {
	// Name is the C name of the constant.
	Name string `json:"name" yaml:"name" toml:"name"`

	// Value holds the constant's bits. Negative constants are stored in
	// two's complement and have Signed set.
	Value uint64 `json:"value" yaml:"value" toml:"value"`

	// Signed is true if the constant is negative.
	Signed bool `json:"signed,omitempty" yaml:"signed,omitempty" toml:"signed,omitempty"`

	// Group is the header family the constant belongs to.
	Group string `json:"group" yaml:"group" toml:"group"`

	// AliasOf names the constant this one is defined as, if any.
	AliasOf string `json:"alias_of,omitempty" yaml:"alias_of,omitempty" toml:"alias_of,omitempty"`

	// Deprecated is true for names kept only for compatibility.
	Deprecated bool `json:"deprecated,omitempty" yaml:"deprecated,omitempty" toml:"deprecated,omitempty"`
}

// Int returns the value as a signed integer.
func (c Constant) Int() int64 {
	return int64(c.Value)
}

// String implements fmt.Stringer.String.
func (c Constant) String() string {
	if c.Signed {
		return fmt.Sprintf("%s=%d", c.Name, c.Int())
	}
	return fmt.Sprintf("%s=%#x", c.Name, c.Value)
}

func k[T constraints.Integer](group, name string, v T) Constant {
	return Constant{
		Name:   name,
		Value:  uint64(v),
		Signed: v < 0,
		Group:  group,
	}
}

func (c Constant) alias(of string, deprecated bool) Constant {
	c.AliasOf = of
	c.Deprecated = deprecated
	return c
}

// Constants returns every constant compiled into this build, in declaration
// order. The family extension's constants come last.
func Constants() []Constant {
	cs := make([]Constant, 0, len(constants)+len(archSignalConsts)+len(familyConsts)+1)
	cs = append(cs, constants...)
	cs = append(cs, archSignalConsts...)
	cs = append(cs, edeadlockConst)
	return append(cs, familyConsts...)
}

var constants = []Constant{
	// time
	k("time", "CLOCK_REALTIME", CLOCK_REALTIME),
	k("time", "CLOCK_MONOTONIC", CLOCK_MONOTONIC),
	k("time", "CLOCK_PROCESS_CPUTIME_ID", CLOCK_PROCESS_CPUTIME_ID),
	k("time", "CLOCK_THREAD_CPUTIME_ID", CLOCK_THREAD_CPUTIME_ID),
	k("time", "CLOCK_MONOTONIC_RAW", CLOCK_MONOTONIC_RAW),
	k("time", "CLOCK_REALTIME_COARSE", CLOCK_REALTIME_COARSE),
	k("time", "CLOCK_MONOTONIC_COARSE", CLOCK_MONOTONIC_COARSE),
	k("time", "CLOCK_BOOTTIME", CLOCK_BOOTTIME),
	k("time", "CLOCK_REALTIME_ALARM", CLOCK_REALTIME_ALARM),
	k("time", "CLOCK_BOOTTIME_ALARM", CLOCK_BOOTTIME_ALARM),
	k("time", "CLOCK_SGI_CYCLE", CLOCK_SGI_CYCLE),
	k("time", "CLOCK_TAI", CLOCK_TAI),

	// signal
	k("signal", "SIGUNUSED", SIGUNUSED).alias("SIGSYS", true),
	k("signal", "SIG_DFL", SIG_DFL),
	k("signal", "SIG_IGN", SIG_IGN),
	k("signal", "SIG_ERR", SIG_ERR),
	k("signal", "SA_NOCLDSTOP", SA_NOCLDSTOP),
	k("signal", "SA_RESTART", SA_RESTART),
	k("signal", "SA_NODEFER", SA_NODEFER),
	k("signal", "SA_RESETHAND", uint64(SA_RESETHAND)),
	k("signal", "SIGEV_SIGNAL", SIGEV_SIGNAL),
	k("signal", "SIGEV_NONE", SIGEV_NONE),
	k("signal", "SIGEV_THREAD", SIGEV_THREAD),
	k("signal", "SIGEV_THREAD_ID", SIGEV_THREAD_ID),
	k("signal", "CLD_EXITED", CLD_EXITED),
	k("signal", "CLD_KILLED", CLD_KILLED),
	k("signal", "CLD_DUMPED", CLD_DUMPED),
	k("signal", "CLD_TRAPPED", CLD_TRAPPED),
	k("signal", "CLD_STOPPED", CLD_STOPPED),
	k("signal", "CLD_CONTINUED", CLD_CONTINUED),
	k("signal", "SEGV_MAPERR", SEGV_MAPERR),
	k("signal", "SEGV_ACCERR", SEGV_ACCERR),
	k("signal", "SIGHUP", SIGHUP),
	k("signal", "SIGINT", SIGINT),
	k("signal", "SIGQUIT", SIGQUIT),
	k("signal", "SIGILL", SIGILL),
	k("signal", "SIGTRAP", SIGTRAP),
	k("signal", "SIGABRT", SIGABRT),
	k("signal", "SIGIOT", SIGIOT).alias("SIGABRT", false),
	k("signal", "SIGBUS", SIGBUS),
	k("signal", "SIGFPE", SIGFPE),
	k("signal", "SIGKILL", SIGKILL),
	k("signal", "SIGUSR1", SIGUSR1),
	k("signal", "SIGSEGV", SIGSEGV),
	k("signal", "SIGUSR2", SIGUSR2),
	k("signal", "SIGPIPE", SIGPIPE),
	k("signal", "SIGALRM", SIGALRM),
	k("signal", "SIGTERM", SIGTERM),
	k("signal", "SIGCHLD", SIGCHLD),
	k("signal", "SIGCONT", SIGCONT),
	k("signal", "SIGSTOP", SIGSTOP),
	k("signal", "SIGTSTP", SIGTSTP),
	k("signal", "SIGTTIN", SIGTTIN),
	k("signal", "SIGTTOU", SIGTTOU),
	k("signal", "SIGURG", SIGURG),
	k("signal", "SIGXCPU", SIGXCPU),
	k("signal", "SIGXFSZ", SIGXFSZ),
	k("signal", "SIGVTALRM", SIGVTALRM),
	k("signal", "SIGPROF", SIGPROF),
	k("signal", "SIGWINCH", SIGWINCH),
	k("signal", "SIGIO", SIGIO),
	k("signal", "SIGPOLL", SIGPOLL).alias("SIGIO", false),
	k("signal", "SIGPWR", SIGPWR),
	k("signal", "SIGSYS", SIGSYS),
	k("signal", "NSIG", NSIG),
	k("signal", "SIG_BLOCK", SIG_BLOCK),
	k("signal", "SIG_UNBLOCK", SIG_UNBLOCK),
	k("signal", "SIG_SETMASK", SIG_SETMASK),
	k("signal", "SA_NOCLDWAIT", SA_NOCLDWAIT),
	k("signal", "SA_SIGINFO", SA_SIGINFO),
	k("signal", "SA_ONSTACK", SA_ONSTACK),

	// errno
	k("errno", "EPERM", EPERM),
	k("errno", "ENOENT", ENOENT),
	k("errno", "ESRCH", ESRCH),
	k("errno", "EINTR", EINTR),
	k("errno", "EIO", EIO),
	k("errno", "ENXIO", ENXIO),
	k("errno", "E2BIG", E2BIG),
	k("errno", "ENOEXEC", ENOEXEC),
	k("errno", "EBADF", EBADF),
	k("errno", "ECHILD", ECHILD),
	k("errno", "EAGAIN", EAGAIN),
	k("errno", "ENOMEM", ENOMEM),
	k("errno", "EACCES", EACCES),
	k("errno", "EFAULT", EFAULT),
	k("errno", "ENOTBLK", ENOTBLK),
	k("errno", "EBUSY", EBUSY),
	k("errno", "EEXIST", EEXIST),
	k("errno", "EXDEV", EXDEV),
	k("errno", "ENODEV", ENODEV),
	k("errno", "ENOTDIR", ENOTDIR),
	k("errno", "EISDIR", EISDIR),
	k("errno", "EINVAL", EINVAL),
	k("errno", "ENFILE", ENFILE),
	k("errno", "EMFILE", EMFILE),
	k("errno", "ENOTTY", ENOTTY),
	k("errno", "ETXTBSY", ETXTBSY),
	k("errno", "EFBIG", EFBIG),
	k("errno", "ENOSPC", ENOSPC),
	k("errno", "ESPIPE", ESPIPE),
	k("errno", "EROFS", EROFS),
	k("errno", "EMLINK", EMLINK),
	k("errno", "EPIPE", EPIPE),
	k("errno", "EDOM", EDOM),
	k("errno", "ERANGE", ERANGE),
	k("errno", "EBFONT", EBFONT),
	k("errno", "ENOSTR", ENOSTR),
	k("errno", "ENODATA", ENODATA),
	k("errno", "ETIME", ETIME),
	k("errno", "ENOSR", ENOSR),
	k("errno", "ENONET", ENONET),
	k("errno", "ENOPKG", ENOPKG),
	k("errno", "EREMOTE", EREMOTE),
	k("errno", "ENOLINK", ENOLINK),
	k("errno", "EADV", EADV),
	k("errno", "ESRMNT", ESRMNT),
	k("errno", "ECOMM", ECOMM),
	k("errno", "EPROTO", EPROTO),
	k("errno", "EDOTDOT", EDOTDOT),
	k("errno", "EWOULDBLOCK", EWOULDBLOCK).alias("EAGAIN", false),
	k("errno", "ENOTSUP", ENOTSUP).alias("EOPNOTSUPP", false),
	k("errno", "EDEADLK", EDEADLK),
	k("errno", "ENAMETOOLONG", ENAMETOOLONG),
	k("errno", "ENOLCK", ENOLCK),
	k("errno", "ENOSYS", ENOSYS),
	k("errno", "ENOTEMPTY", ENOTEMPTY),
	k("errno", "ELOOP", ELOOP),
	k("errno", "ENOMSG", ENOMSG),
	k("errno", "EIDRM", EIDRM),
	k("errno", "EMULTIHOP", EMULTIHOP),
	k("errno", "EBADMSG", EBADMSG),
	k("errno", "EOVERFLOW", EOVERFLOW),
	k("errno", "EILSEQ", EILSEQ),
	k("errno", "ENOTSOCK", ENOTSOCK),
	k("errno", "EOPNOTSUPP", EOPNOTSUPP),
	k("errno", "EAFNOSUPPORT", EAFNOSUPPORT),
	k("errno", "EADDRINUSE", EADDRINUSE),
	k("errno", "EADDRNOTAVAIL", EADDRNOTAVAIL),
	k("errno", "ENETUNREACH", ENETUNREACH),
	k("errno", "ECONNRESET", ECONNRESET),
	k("errno", "ENOBUFS", ENOBUFS),
	k("errno", "EISCONN", EISCONN),
	k("errno", "ENOTCONN", ENOTCONN),
	k("errno", "ETIMEDOUT", ETIMEDOUT),
	k("errno", "ECONNREFUSED", ECONNREFUSED),
	k("errno", "EHOSTUNREACH", EHOSTUNREACH),
	k("errno", "EALREADY", EALREADY),
	k("errno", "EINPROGRESS", EINPROGRESS),
	k("errno", "ESTALE", ESTALE),
	k("errno", "EDQUOT", EDQUOT),
	k("errno", "ECANCELED", ECANCELED),
	k("errno", "EOWNERDEAD", EOWNERDEAD),
	k("errno", "ENOTRECOVERABLE", ENOTRECOVERABLE),
	k("errno", "EHWPOISON", EHWPOISON),

	// fcntl
	k("fcntl", "O_RDONLY", O_RDONLY),
	k("fcntl", "O_WRONLY", O_WRONLY),
	k("fcntl", "O_RDWR", O_RDWR),
	k("fcntl", "O_TRUNC", O_TRUNC),
	k("fcntl", "O_NOATIME", O_NOATIME),
	k("fcntl", "O_CLOEXEC", O_CLOEXEC),
	k("fcntl", "O_PATH", O_PATH),
	k("fcntl", "O_TMPFILE", O_TMPFILE),
	k("fcntl", "O_EXEC", O_EXEC).alias("O_PATH", false),
	k("fcntl", "O_SEARCH", O_SEARCH).alias("O_PATH", false),
	k("fcntl", "O_ACCMODE", O_ACCMODE),
	k("fcntl", "O_NDELAY", O_NDELAY).alias("O_NONBLOCK", false),
	k("fcntl", "O_RSYNC", O_RSYNC).alias("O_SYNC", false),
	k("fcntl", "O_FSYNC", O_FSYNC).alias("O_SYNC", false),
	k("fcntl", "F_DUPFD", F_DUPFD),
	k("fcntl", "F_GETFD", F_GETFD),
	k("fcntl", "F_SETFD", F_SETFD),
	k("fcntl", "F_GETFL", F_GETFL),
	k("fcntl", "F_SETFL", F_SETFL),
	k("fcntl", "F_OFD_GETLK", F_OFD_GETLK),
	k("fcntl", "F_OFD_SETLK", F_OFD_SETLK),
	k("fcntl", "F_OFD_SETLKW", F_OFD_SETLKW),
	k("fcntl", "F_DUPFD_CLOEXEC", F_DUPFD_CLOEXEC),
	k("fcntl", "FD_CLOEXEC", FD_CLOEXEC),
	k("fcntl", "F_RDLCK", F_RDLCK),
	k("fcntl", "F_WRLCK", F_WRLCK),
	k("fcntl", "F_UNLCK", F_UNLCK),
	k("fcntl", "F_OK", F_OK),
	k("fcntl", "X_OK", X_OK),
	k("fcntl", "W_OK", W_OK),
	k("fcntl", "R_OK", R_OK),
	k("fcntl", "O_CREAT", O_CREAT),
	k("fcntl", "O_EXCL", O_EXCL),
	k("fcntl", "O_NOCTTY", O_NOCTTY),
	k("fcntl", "O_APPEND", O_APPEND),
	k("fcntl", "O_NONBLOCK", O_NONBLOCK),
	k("fcntl", "O_DSYNC", O_DSYNC),
	k("fcntl", "O_SYNC", O_SYNC),
	k("fcntl", "O_ASYNC", O_ASYNC),
	k("fcntl", "O_DIRECT", O_DIRECT),
	k("fcntl", "O_DIRECTORY", O_DIRECTORY),
	k("fcntl", "O_NOFOLLOW", O_NOFOLLOW),

	// mman
	k("mman", "PROT_NONE", PROT_NONE),
	k("mman", "PROT_READ", PROT_READ),
	k("mman", "PROT_WRITE", PROT_WRITE),
	k("mman", "PROT_EXEC", PROT_EXEC),
	k("mman", "MAP_SHARED", MAP_SHARED),
	k("mman", "MAP_PRIVATE", MAP_PRIVATE),
	k("mman", "MAP_FIXED", MAP_FIXED),
	k("mman", "MAP_ANONYMOUS", MAP_ANONYMOUS).alias("MAP_ANON", false),
	k("mman", "MAP_HUGE_SHIFT", MAP_HUGE_SHIFT),
	k("mman", "MAP_HUGE_MASK", MAP_HUGE_MASK),
	k("mman", "MAP_HUGE_64KB", MAP_HUGE_64KB),
	k("mman", "MAP_HUGE_512KB", MAP_HUGE_512KB),
	k("mman", "MAP_HUGE_1MB", MAP_HUGE_1MB),
	k("mman", "MAP_HUGE_2MB", MAP_HUGE_2MB),
	k("mman", "MAP_HUGE_8MB", MAP_HUGE_8MB),
	k("mman", "MAP_HUGE_16MB", MAP_HUGE_16MB),
	k("mman", "MAP_HUGE_32MB", MAP_HUGE_32MB),
	k("mman", "MAP_HUGE_256MB", MAP_HUGE_256MB),
	k("mman", "MAP_HUGE_512MB", MAP_HUGE_512MB),
	k("mman", "MAP_HUGE_1GB", MAP_HUGE_1GB),
	k("mman", "MAP_HUGE_2GB", uint64(MAP_HUGE_2GB)),
	k("mman", "MAP_HUGE_16GB", uint64(MAP_HUGE_16GB)),
	k("mman", "POSIX_MADV_NORMAL", POSIX_MADV_NORMAL),
	k("mman", "POSIX_MADV_RANDOM", POSIX_MADV_RANDOM),
	k("mman", "POSIX_MADV_SEQUENTIAL", POSIX_MADV_SEQUENTIAL),
	k("mman", "POSIX_MADV_WILLNEED", POSIX_MADV_WILLNEED),
	k("mman", "POSIX_MADV_DONTNEED", POSIX_MADV_DONTNEED),
	k("mman", "MFD_CLOEXEC", MFD_CLOEXEC),
	k("mman", "MFD_ALLOW_SEALING", MFD_ALLOW_SEALING),
	k("mman", "MFD_HUGETLB", MFD_HUGETLB),
	k("mman", "MLOCK_ONFAULT", MLOCK_ONFAULT),
	k("mman", "MS_RMT_MASK", MS_RMT_MASK),
	k("mman", "MAP_ANON", MAP_ANON),
	k("mman", "MAP_HUGETLB", MAP_HUGETLB),

	// eventfd
	k("eventfd", "EFD_SEMAPHORE", EFD_SEMAPHORE),
	k("eventfd", "EFD_CLOEXEC", EFD_CLOEXEC),
	k("eventfd", "EFD_NONBLOCK", EFD_NONBLOCK).alias("O_NONBLOCK", false),
	k("eventfd", "SFD_CLOEXEC", SFD_CLOEXEC),
	k("eventfd", "SFD_NONBLOCK", SFD_NONBLOCK).alias("O_NONBLOCK", false),
	k("eventfd", "EPOLL_CLOEXEC", EPOLL_CLOEXEC),

	// fadvise
	k("fadvise", "POSIX_FADV_NORMAL", POSIX_FADV_NORMAL),
	k("fadvise", "POSIX_FADV_RANDOM", POSIX_FADV_RANDOM),
	k("fadvise", "POSIX_FADV_SEQUENTIAL", POSIX_FADV_SEQUENTIAL),
	k("fadvise", "POSIX_FADV_WILLNEED", POSIX_FADV_WILLNEED),
	k("fadvise", "POSIX_FADV_DONTNEED", POSIX_FADV_DONTNEED),
	k("fadvise", "POSIX_FADV_NOREUSE", POSIX_FADV_NOREUSE),

	// sched
	k("sched", "CLONE_NEWTIME", CLONE_NEWTIME),
	k("sched", "CPU_SETSIZE", CPU_SETSIZE),

	// socket
	k("socket", "SOCK_RAW", SOCK_RAW),
	k("socket", "SOCK_RDM", SOCK_RDM),
	k("socket", "SOCK_SEQPACKET", SOCK_SEQPACKET),
	k("socket", "SOCK_DCCP", SOCK_DCCP),
	k("socket", "SOCK_PACKET", SOCK_PACKET).alias("", true),
	k("socket", "SOCK_NONBLOCK", SOCK_NONBLOCK).alias("O_NONBLOCK", false),
	k("socket", "SOCK_CLOEXEC", SOCK_CLOEXEC).alias("O_CLOEXEC", false),
	k("socket", "SOMAXCONN", SOMAXCONN),
	k("socket", "AF_UNSPEC", AF_UNSPEC),
	k("socket", "AF_UNIX", AF_UNIX),
	k("socket", "AF_LOCAL", AF_LOCAL).alias("AF_UNIX", false),
	k("socket", "AF_INET", AF_INET),
	k("socket", "AF_INET6", AF_INET6),
	k("socket", "AF_NETLINK", AF_NETLINK),
	k("socket", "AF_PACKET", AF_PACKET),
	k("socket", "AF_IB", AF_IB),
	k("socket", "AF_MPLS", AF_MPLS),
	k("socket", "AF_NFC", AF_NFC),
	k("socket", "AF_VSOCK", AF_VSOCK),
	k("socket", "AF_XDP", AF_XDP),
	k("socket", "PF_UNSPEC", PF_UNSPEC).alias("AF_UNSPEC", false),
	k("socket", "PF_UNIX", PF_UNIX).alias("AF_UNIX", false),
	k("socket", "PF_LOCAL", PF_LOCAL).alias("AF_LOCAL", false),
	k("socket", "PF_INET", PF_INET).alias("AF_INET", false),
	k("socket", "PF_INET6", PF_INET6).alias("AF_INET6", false),
	k("socket", "PF_NETLINK", PF_NETLINK).alias("AF_NETLINK", false),
	k("socket", "PF_PACKET", PF_PACKET).alias("AF_PACKET", false),
	k("socket", "PF_IB", PF_IB).alias("AF_IB", false),
	k("socket", "PF_MPLS", PF_MPLS).alias("AF_MPLS", false),
	k("socket", "PF_NFC", PF_NFC).alias("AF_NFC", false),
	k("socket", "PF_VSOCK", PF_VSOCK).alias("AF_VSOCK", false),
	k("socket", "PF_XDP", PF_XDP).alias("AF_XDP", false),
	k("socket", "NI_MAXHOST", NI_MAXHOST),
	k("socket", "NI_MAXSERV", NI_MAXSERV),
	k("socket", "SOCK_STREAM", SOCK_STREAM),
	k("socket", "SOCK_DGRAM", SOCK_DGRAM),

	// uio
	k("uio", "RWF_HIPRI", RWF_HIPRI),
	k("uio", "RWF_DSYNC", RWF_DSYNC),
	k("uio", "RWF_SYNC", RWF_SYNC),
	k("uio", "RWF_NOWAIT", RWF_NOWAIT),
	k("uio", "RWF_APPEND", RWF_APPEND),

	// termios
	k("termios", "TCSANOW", TCSANOW),
	k("termios", "TCSADRAIN", TCSADRAIN),
	k("termios", "TCSAFLUSH", TCSAFLUSH),
	k("termios", "B0", B0),
	k("termios", "B50", B50),
	k("termios", "B75", B75),
	k("termios", "B110", B110),
	k("termios", "B134", B134),
	k("termios", "B150", B150),
	k("termios", "B200", B200),
	k("termios", "B300", B300),
	k("termios", "B600", B600),
	k("termios", "B1200", B1200),
	k("termios", "B1800", B1800),
	k("termios", "B2400", B2400),
	k("termios", "B4800", B4800),
	k("termios", "B9600", B9600),
	k("termios", "B19200", B19200),
	k("termios", "B38400", B38400),
	k("termios", "EXTA", EXTA).alias("B19200", false),
	k("termios", "EXTB", EXTB).alias("B38400", false),
	k("termios", "NCCS", NCCS),

	// statfs
	k("statfs", "ST_RDONLY", ST_RDONLY),
	k("statfs", "ST_NOSUID", ST_NOSUID),
	k("statfs", "ST_NODEV", ST_NODEV),
	k("statfs", "ST_NOEXEC", ST_NOEXEC),
	k("statfs", "ST_SYNCHRONOUS", ST_SYNCHRONOUS),
	k("statfs", "ST_MANDLOCK", ST_MANDLOCK),
	k("statfs", "ST_NOATIME", ST_NOATIME),
	k("statfs", "ST_NODIRATIME", ST_NODIRATIME),
	k("statfs", "ST_RELATIME", ST_RELATIME),

	// timex
	k("timex", "ADJ_OFFSET", ADJ_OFFSET),
	k("timex", "ADJ_FREQUENCY", ADJ_FREQUENCY),
	k("timex", "ADJ_MAXERROR", ADJ_MAXERROR),
	k("timex", "ADJ_ESTERROR", ADJ_ESTERROR),
	k("timex", "ADJ_STATUS", ADJ_STATUS),
	k("timex", "ADJ_TIMECONST", ADJ_TIMECONST),
	k("timex", "ADJ_TAI", ADJ_TAI),
	k("timex", "ADJ_SETOFFSET", ADJ_SETOFFSET),
	k("timex", "ADJ_MICRO", ADJ_MICRO),
	k("timex", "ADJ_NANO", ADJ_NANO),
	k("timex", "ADJ_TICK", ADJ_TICK),
	k("timex", "ADJ_OFFSET_SINGLESHOT", ADJ_OFFSET_SINGLESHOT),
	k("timex", "ADJ_OFFSET_SS_READ", ADJ_OFFSET_SS_READ),
	k("timex", "MOD_OFFSET", MOD_OFFSET).alias("ADJ_OFFSET", false),
	k("timex", "MOD_FREQUENCY", MOD_FREQUENCY).alias("ADJ_FREQUENCY", false),
	k("timex", "MOD_MAXERROR", MOD_MAXERROR).alias("ADJ_MAXERROR", false),
	k("timex", "MOD_ESTERROR", MOD_ESTERROR).alias("ADJ_ESTERROR", false),
	k("timex", "MOD_STATUS", MOD_STATUS).alias("ADJ_STATUS", false),
	k("timex", "MOD_TIMECONST", MOD_TIMECONST).alias("ADJ_TIMECONST", false),
	k("timex", "MOD_CLKB", MOD_CLKB).alias("ADJ_TICK", false),
	k("timex", "MOD_CLKA", MOD_CLKA).alias("ADJ_OFFSET_SINGLESHOT", false),
	k("timex", "MOD_TAI", MOD_TAI).alias("ADJ_TAI", false),
	k("timex", "MOD_MICRO", MOD_MICRO).alias("ADJ_MICRO", false),
	k("timex", "MOD_NANO", MOD_NANO).alias("ADJ_NANO", false),
	k("timex", "STA_PLL", STA_PLL),
	k("timex", "STA_PPSFREQ", STA_PPSFREQ),
	k("timex", "STA_PPSTIME", STA_PPSTIME),
	k("timex", "STA_FLL", STA_FLL),
	k("timex", "STA_INS", STA_INS),
	k("timex", "STA_DEL", STA_DEL),
	k("timex", "STA_UNSYNC", STA_UNSYNC),
	k("timex", "STA_FREQHOLD", STA_FREQHOLD),
	k("timex", "STA_PPSSIGNAL", STA_PPSSIGNAL),
	k("timex", "STA_PPSJITTER", STA_PPSJITTER),
	k("timex", "STA_PPSWANDER", STA_PPSWANDER),
	k("timex", "STA_PPSERROR", STA_PPSERROR),
	k("timex", "STA_CLOCKERR", STA_CLOCKERR),
	k("timex", "STA_NANO", STA_NANO),
	k("timex", "STA_MODE", STA_MODE),
	k("timex", "STA_CLK", STA_CLK),
	k("timex", "STA_RONLY", STA_RONLY),
	k("timex", "TIME_OK", TIME_OK),
	k("timex", "TIME_INS", TIME_INS),
	k("timex", "TIME_DEL", TIME_DEL),
	k("timex", "TIME_OOP", TIME_OOP),
	k("timex", "TIME_WAIT", TIME_WAIT),
	k("timex", "TIME_ERROR", TIME_ERROR),
	k("timex", "TIME_BAD", TIME_BAD).alias("TIME_ERROR", false),
	k("timex", "MAXTC", MAXTC),

	// utmpx
	k("utmpx", "EMPTY", EMPTY),
	k("utmpx", "RUN_LVL", RUN_LVL),
	k("utmpx", "BOOT_TIME", BOOT_TIME),
	k("utmpx", "NEW_TIME", NEW_TIME),
	k("utmpx", "OLD_TIME", OLD_TIME),
	k("utmpx", "INIT_PROCESS", INIT_PROCESS),
	k("utmpx", "LOGIN_PROCESS", LOGIN_PROCESS),
	k("utmpx", "USER_PROCESS", USER_PROCESS),
	k("utmpx", "DEAD_PROCESS", DEAD_PROCESS),
	k("utmpx", "ACCOUNTING", ACCOUNTING),
	k("utmpx", "UT_LINESIZE", UT_LINESIZE),
	k("utmpx", "UT_NAMESIZE", UT_NAMESIZE),
	k("utmpx", "UT_HOSTSIZE", UT_HOSTSIZE),

	// aio
	k("aio", "AIO_CANCELED", AIO_CANCELED),
	k("aio", "AIO_NOTCANCELED", AIO_NOTCANCELED),
	k("aio", "AIO_ALLDONE", AIO_ALLDONE),
	k("aio", "LIO_READ", LIO_READ),
	k("aio", "LIO_WRITE", LIO_WRITE),
	k("aio", "LIO_NOP", LIO_NOP),
	k("aio", "LIO_WAIT", LIO_WAIT),
	k("aio", "LIO_NOWAIT", LIO_NOWAIT),

	// sysinfo
	k("sysinfo", "SI_LOAD_SHIFT", SI_LOAD_SHIFT),

	// fanotify
	k("fanotify", "FANOTIFY_METADATA_VERSION", FANOTIFY_METADATA_VERSION),
	k("fanotify", "FAN_MARK_ADD", FAN_MARK_ADD),
	k("fanotify", "FAN_MARK_REMOVE", FAN_MARK_REMOVE),
	k("fanotify", "FAN_MARK_FLUSH", FAN_MARK_FLUSH),

	// regex
	k("regex", "REG_OK", REG_OK),
	k("regex", "REG_NOMATCH", REG_NOMATCH),
	k("regex", "REG_BADPAT", REG_BADPAT),
	k("regex", "REG_ECOLLATE", REG_ECOLLATE),
	k("regex", "REG_ECTYPE", REG_ECTYPE),
	k("regex", "REG_EESCAPE", REG_EESCAPE),
	k("regex", "REG_ESUBREG", REG_ESUBREG),
	k("regex", "REG_EBRACK", REG_EBRACK),
	k("regex", "REG_EPAREN", REG_EPAREN),
	k("regex", "REG_EBRACE", REG_EBRACE),
	k("regex", "REG_BADBR", REG_BADBR),
	k("regex", "REG_ERANGE", REG_ERANGE),
	k("regex", "REG_ESPACE", REG_ESPACE),
	k("regex", "REG_BADRPT", REG_BADRPT),
	k("regex", "REG_ENOSYS", REG_ENOSYS),

	// elf
	k("elf", "ELFCOMPRESS_ZLIB", ELFCOMPRESS_ZLIB),
	k("elf", "AT_NULL", AT_NULL),
	k("elf", "AT_IGNORE", AT_IGNORE),
	k("elf", "AT_EXECFD", AT_EXECFD),
	k("elf", "AT_PHDR", AT_PHDR),
	k("elf", "AT_PHENT", AT_PHENT),
	k("elf", "AT_PHNUM", AT_PHNUM),
	k("elf", "AT_PAGESZ", AT_PAGESZ),
	k("elf", "AT_BASE", AT_BASE),
	k("elf", "AT_FLAGS", AT_FLAGS),
	k("elf", "AT_ENTRY", AT_ENTRY),
	k("elf", "AT_NOTELF", AT_NOTELF),
	k("elf", "AT_UID", AT_UID),
	k("elf", "AT_EUID", AT_EUID),
	k("elf", "AT_GID", AT_GID),
	k("elf", "AT_EGID", AT_EGID),
	k("elf", "AT_PLATFORM", AT_PLATFORM),
	k("elf", "AT_HWCAP", AT_HWCAP),
	k("elf", "AT_CLKTCK", AT_CLKTCK),
	k("elf", "AT_SECURE", AT_SECURE),
	k("elf", "AT_BASE_PLATFORM", AT_BASE_PLATFORM),
	k("elf", "AT_RANDOM", AT_RANDOM),
	k("elf", "AT_HWCAP2", AT_HWCAP2),
	k("elf", "AT_EXECFN", AT_EXECFN),
	k("elf", "AT_SYSINFO_EHDR", AT_SYSINFO_EHDR),
	k("elf", "AT_MINSIGSTKSZ", AT_MINSIGSTKSZ),

	// tcp
	k("tcp", "TCP_ESTABLISHED", TCP_ESTABLISHED),
	k("tcp", "TCP_SYN_SENT", TCP_SYN_SENT),
	k("tcp", "TCP_SYN_RECV", TCP_SYN_RECV),
	k("tcp", "TCP_FIN_WAIT1", TCP_FIN_WAIT1),
	k("tcp", "TCP_FIN_WAIT2", TCP_FIN_WAIT2),
	k("tcp", "TCP_TIME_WAIT", TCP_TIME_WAIT),
	k("tcp", "TCP_CLOSE", TCP_CLOSE),
	k("tcp", "TCP_CLOSE_WAIT", TCP_CLOSE_WAIT),
	k("tcp", "TCP_LAST_ACK", TCP_LAST_ACK),
	k("tcp", "TCP_LISTEN", TCP_LISTEN),
	k("tcp", "TCP_CLOSING", TCP_CLOSING),

	// resource
	k("resource", "RLIM_INFINITY", RLIM_INFINITY),
	k("resource", "RLIM_SAVED_CUR", RLIM_SAVED_CUR).alias("RLIM_INFINITY", false),
	k("resource", "RLIM_SAVED_MAX", RLIM_SAVED_MAX).alias("RLIM_INFINITY", false),
	k("resource", "RLIMIT_CPU", RLIMIT_CPU),
	k("resource", "RLIMIT_FSIZE", RLIMIT_FSIZE),
	k("resource", "RLIMIT_DATA", RLIMIT_DATA),
	k("resource", "RLIMIT_STACK", RLIMIT_STACK),
	k("resource", "RLIMIT_CORE", RLIMIT_CORE),
	k("resource", "RLIMIT_LOCKS", RLIMIT_LOCKS),
	k("resource", "RLIMIT_SIGPENDING", RLIMIT_SIGPENDING),
	k("resource", "RLIMIT_MSGQUEUE", RLIMIT_MSGQUEUE),
	k("resource", "RLIMIT_NICE", RLIMIT_NICE),
	k("resource", "RLIMIT_RTPRIO", RLIMIT_RTPRIO),
	k("resource", "RLIMIT_RTTIME", RLIMIT_RTTIME),
	k("resource", "RLIMIT_NLIMITS", RLIMIT_NLIMITS),
	k("resource", "RLIM_NLIMITS", RLIM_NLIMITS).alias("RLIMIT_NLIMITS", true),
	k("resource", "PRIO_PROCESS", PRIO_PROCESS),
	k("resource", "PRIO_PGRP", PRIO_PGRP),
	k("resource", "PRIO_USER", PRIO_USER),
	k("resource", "RLIMIT_RSS", RLIMIT_RSS),
	k("resource", "RLIMIT_NPROC", RLIMIT_NPROC),
	k("resource", "RLIMIT_NOFILE", RLIMIT_NOFILE),
	k("resource", "RLIMIT_MEMLOCK", RLIMIT_MEMLOCK),
	k("resource", "RLIMIT_AS", RLIMIT_AS),

	// ptrace
	k("ptrace", "PTRACE_TRACEME", PTRACE_TRACEME),
	k("ptrace", "PTRACE_PEEKTEXT", PTRACE_PEEKTEXT),
	k("ptrace", "PTRACE_PEEKDATA", PTRACE_PEEKDATA),
	k("ptrace", "PTRACE_PEEKUSER", PTRACE_PEEKUSER),
	k("ptrace", "PTRACE_POKETEXT", PTRACE_POKETEXT),
	k("ptrace", "PTRACE_POKEDATA", PTRACE_POKEDATA),
	k("ptrace", "PTRACE_POKEUSER", PTRACE_POKEUSER),
	k("ptrace", "PTRACE_CONT", PTRACE_CONT),
	k("ptrace", "PTRACE_KILL", PTRACE_KILL),
	k("ptrace", "PTRACE_SINGLESTEP", PTRACE_SINGLESTEP),
	k("ptrace", "PTRACE_GETREGS", PTRACE_GETREGS),
	k("ptrace", "PTRACE_SETREGS", PTRACE_SETREGS),
	k("ptrace", "PTRACE_GETFPREGS", PTRACE_GETFPREGS),
	k("ptrace", "PTRACE_SETFPREGS", PTRACE_SETFPREGS),
	k("ptrace", "PTRACE_ATTACH", PTRACE_ATTACH),
	k("ptrace", "PTRACE_DETACH", PTRACE_DETACH),
	k("ptrace", "PTRACE_GETFPXREGS", PTRACE_GETFPXREGS),
	k("ptrace", "PTRACE_SETFPXREGS", PTRACE_SETFPXREGS),
	k("ptrace", "PTRACE_SYSCALL", PTRACE_SYSCALL),
	k("ptrace", "PTRACE_SETOPTIONS", PTRACE_SETOPTIONS),
	k("ptrace", "PTRACE_GETEVENTMSG", PTRACE_GETEVENTMSG),
	k("ptrace", "PTRACE_GETSIGINFO", PTRACE_GETSIGINFO),
	k("ptrace", "PTRACE_SETSIGINFO", PTRACE_SETSIGINFO),
	k("ptrace", "PTRACE_GETREGSET", PTRACE_GETREGSET),
	k("ptrace", "PTRACE_SETREGSET", PTRACE_SETREGSET),
	k("ptrace", "PTRACE_SEIZE", PTRACE_SEIZE),
	k("ptrace", "PTRACE_INTERRUPT", PTRACE_INTERRUPT),
	k("ptrace", "PTRACE_LISTEN", PTRACE_LISTEN),
	k("ptrace", "PTRACE_PEEKSIGINFO", PTRACE_PEEKSIGINFO),
	k("ptrace", "PTRACE_GETSIGMASK", PTRACE_GETSIGMASK),
	k("ptrace", "PTRACE_SETSIGMASK", PTRACE_SETSIGMASK),
	k("ptrace", "PTRACE_O_TRACESYSGOOD", PTRACE_O_TRACESYSGOOD),
	k("ptrace", "PTRACE_O_TRACEFORK", PTRACE_O_TRACEFORK),
	k("ptrace", "PTRACE_O_TRACEVFORK", PTRACE_O_TRACEVFORK),
	k("ptrace", "PTRACE_O_TRACECLONE", PTRACE_O_TRACECLONE),
	k("ptrace", "PTRACE_O_TRACEEXEC", PTRACE_O_TRACEEXEC),
	k("ptrace", "PTRACE_O_EXITKILL", PTRACE_O_EXITKILL),

	// limits
	k("limits", "BUFSIZ", BUFSIZ),
	k("limits", "TMP_MAX", TMP_MAX),
	k("limits", "FOPEN_MAX", FOPEN_MAX),
	k("limits", "FILENAME_MAX", FILENAME_MAX),
	k("limits", "L_tmpnam", L_tmpnam),
	k("limits", "PTHREAD_STACK_MIN", PTHREAD_STACK_MIN),
	k("limits", "__SIZEOF_PTHREAD_CONDATTR_T", SIZEOF_PTHREAD_CONDATTR_T),
	k("limits", "__SIZEOF_PTHREAD_MUTEXATTR_T", SIZEOF_PTHREAD_MUTEXATTR_T),
	k("limits", "__SIZEOF_PTHREAD_RWLOCKATTR_T", SIZEOF_PTHREAD_RWLOCKATTR_T),
	k("limits", "__SIZEOF_PTHREAD_BARRIERATTR_T", SIZEOF_PTHREAD_BARRIERATTR_T),

	// dlfcn
	k("dlfcn", "RTLD_LOCAL", RTLD_LOCAL),
	k("dlfcn", "RTLD_LAZY", RTLD_LAZY),
	k("dlfcn", "RTLD_NOW", RTLD_NOW),
	k("dlfcn", "RTLD_NOLOAD", RTLD_NOLOAD),
	k("dlfcn", "RTLD_GLOBAL", RTLD_GLOBAL),
	k("dlfcn", "RTLD_NODELETE", RTLD_NODELETE),

	// unistd
	k("unistd", "_CS_PATH", CS_PATH),
	k("unistd", "_CS_POSIX_V6_WIDTH_RESTRICTED_ENVS", CS_POSIX_V6_WIDTH_RESTRICTED_ENVS),
	k("unistd", "_CS_GNU_LIBC_VERSION", CS_GNU_LIBC_VERSION),
	k("unistd", "_CS_GNU_LIBPTHREAD_VERSION", CS_GNU_LIBPTHREAD_VERSION),
	k("unistd", "_CS_V6_ENV", CS_V6_ENV),
	k("unistd", "_CS_V7_ENV", CS_V7_ENV),

	// random
	k("random", "GRND_NONBLOCK", GRND_NONBLOCK),
	k("random", "GRND_RANDOM", GRND_RANDOM),
	k("random", "GRND_INSECURE", GRND_INSECURE),

	// spawn
	k("spawn", "POSIX_SPAWN_RESETIDS", POSIX_SPAWN_RESETIDS),
	k("spawn", "POSIX_SPAWN_SETPGROUP", POSIX_SPAWN_SETPGROUP),
	k("spawn", "POSIX_SPAWN_SETSIGDEF", POSIX_SPAWN_SETSIGDEF),
	k("spawn", "POSIX_SPAWN_SETSIGMASK", POSIX_SPAWN_SETSIGMASK),
	k("spawn", "POSIX_SPAWN_SETSCHEDPARAM", POSIX_SPAWN_SETSCHEDPARAM),
	k("spawn", "POSIX_SPAWN_SETSCHEDULER", POSIX_SPAWN_SETSCHEDULER),
	k("spawn", "POSIX_SPAWN_USEVFORK", POSIX_SPAWN_USEVFORK),
	k("spawn", "POSIX_SPAWN_SETSID", POSIX_SPAWN_SETSID),

	// route
	k("route", "RTF_UP", RTF_UP),
	k("route", "RTF_GATEWAY", RTF_GATEWAY),
	k("route", "RTF_HOST", RTF_HOST),
}
