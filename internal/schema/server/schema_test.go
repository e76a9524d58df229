package server

import (
	"testing"

	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/stretchr/testify/require"
)

// buildStatus assembles a STATUS response the way a head would.
func buildStatus(t *testing.T) []byte {
	t.Helper()
	b := flatbuffers.NewBuilder(256)

	CameraDataStart(b)
	CameraDataAddPort(b, 0)
	CameraDataAddPixelsInWindow(b, 700)
	CameraDataAddTemperature(b, 41)
	cam0 := CameraDataEnd(b)

	StatusDataStartCameraDataVector(b, 1)
	b.PrependUOffsetT(cam0)
	cams := b.EndVector(1)

	StatusDataStartEncodersVector(b, 2)
	b.PrependInt64(-7)
	b.PrependInt64(1024)
	encs := b.EndVector(2)

	StatusDataStart(b)
	StatusDataAddGlobalTimeNs(b, 123456789)
	StatusDataAddNumProfilesSent(b, 42)
	StatusDataAddMinScanPeriodNs(b, 1_500_000)
	StatusDataAddCameraData(b, cams)
	StatusDataAddEncoders(b, encs)
	status := StatusDataEnd(b)

	MessageServerStart(b)
	MessageServerAddType(b, MessageTypeSTATUS)
	MessageServerAddDataType(b, MessageDataStatusData)
	MessageServerAddData(b, status)
	b.Finish(MessageServerEnd(b))
	return b.FinishedBytes()
}

func TestStatusRoundTrip(t *testing.T) {
	raw := buildStatus(t)

	msg := GetRootAsMessageServer(raw, 0)
	require.Equal(t, MessageTypeSTATUS, msg.Type())
	require.Equal(t, MessageDataStatusData, msg.DataType())

	var tbl flatbuffers.Table
	require.True(t, msg.Data(&tbl))
	var sd StatusData
	sd.Init(tbl.Bytes, tbl.Pos)

	require.Equal(t, uint64(123456789), sd.GlobalTimeNs())
	require.Equal(t, uint32(42), sd.NumProfilesSent())
	require.Equal(t, uint32(1_500_000), sd.MinScanPeriodNs())

	require.Equal(t, 1, sd.CameraDataLength())
	var cam CameraData
	require.True(t, sd.CameraData(&cam, 0))
	require.Equal(t, uint32(700), cam.PixelsInWindow())
	require.Equal(t, int32(41), cam.Temperature())

	require.Equal(t, 2, sd.EncodersLength())
	require.Equal(t, int64(1024), sd.Encoders(0))
	require.Equal(t, int64(-7), sd.Encoders(1))
}

func TestProfileDataRoundTrip(t *testing.T) {
	b := flatbuffers.NewBuilder(512)

	const numPoints = 8
	ProfileDataStartPointsVector(b, numPoints)
	for i := numPoints - 1; i >= 0; i-- {
		CreateProfilePoint(b, int16(i), int16(-i), byte(i*10))
	}
	points := b.EndVector(numPoints)

	ProfileDataStart(b)
	ProfileDataAddCameraPort(b, 1)
	ProfileDataAddLaserPort(b, 0)
	ProfileDataAddTimestampNs(b, 99)
	ProfileDataAddLaserOnTimeNs(b, 500_000)
	ProfileDataAddValidPoints(b, numPoints)
	ProfileDataAddPoints(b, points)
	b.Finish(ProfileDataEnd(b))

	pd := GetRootAsProfileData(b.FinishedBytes(), 0)
	require.Equal(t, uint32(1), pd.CameraPort())
	require.Equal(t, numPoints, pd.PointsLength())

	var p ProfilePoint
	require.True(t, pd.Points(&p, 3))
	require.Equal(t, int16(3), p.X())
	require.Equal(t, int16(-3), p.Y())
	require.Equal(t, byte(30), p.Brightness())
}

func TestDiscoveryRoundTrip(t *testing.T) {
	b := flatbuffers.NewBuilder(128)

	typeStr := b.CreateString("JS-50 WX")
	MessageServerDiscoveryStart(b)
	MessageServerDiscoveryAddSerialNumber(b, 12345)
	MessageServerDiscoveryAddIpServer(b, 0xC0A80105)
	MessageServerDiscoveryAddType(b, 1)
	MessageServerDiscoveryAddVersionMajor(b, 16)
	MessageServerDiscoveryAddVersionMinor(b, 2)
	MessageServerDiscoveryAddVersionPatch(b, 1)
	MessageServerDiscoveryAddTypeStr(b, typeStr)
	b.Finish(MessageServerDiscoveryEnd(b))

	d := GetRootAsMessageServerDiscovery(b.FinishedBytes(), 0)
	require.Equal(t, uint32(12345), d.SerialNumber())
	require.Equal(t, uint32(0xC0A80105), d.IpServer())
	require.Equal(t, uint32(16), d.VersionMajor())
	require.Equal(t, "JS-50 WX", string(d.TypeStr()))
}
