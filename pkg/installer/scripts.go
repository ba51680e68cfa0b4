package installer

import (
	"context"
	"fmt"

	"limeal.fr/quiltgo/pkg/connectors"
)

// Heap and GC flags sized for a small modern-JDK server.
const (
	unixScript = "#!/usr/bin/env sh\n" +
		"exec java -Xms2G -Xmx2G -XX:+UseG1GC -jar " + LaunchJarName + " nogui\n"

	batchScript = "@echo off\r\n" +
		"java -Xms2G -Xmx2G -XX:+UseG1GC -jar " + LaunchJarName + " nogui\r\n" +
		"pause\r\n"
)

// writeLaunchScripts writes run.sh and run.bat unless they already exist; a
// script the user may have edited is never overwritten.
func writeLaunchScripts(ctx context.Context, target connectors.Connector) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if !target.HasFile("run.sh") {
		if err := target.SendFileFromBytes("run.sh", []byte(unixScript), 0755); err != nil {
			return fmt.Errorf("failed to write run.sh: %w", err)
		}
	}
	if !target.HasFile("run.bat") {
		if err := target.SendFileFromBytes("run.bat", []byte(batchScript)); err != nil {
			return fmt.Errorf("failed to write run.bat: %w", err)
		}
	}
	return nil
}
