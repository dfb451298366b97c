package content

// Stage instruction templates. Data only, no logic.

// analyzeInstruction asks for an analysis of the video material.
// Args: title, duration seconds, description, transcript, platform.
const analyzeInstruction = `You are analyzing a YouTube video.
Title: %s
Duration: %d seconds
Description: %s
Transcript below:
%s
Extract the main topic, 5-7 key points, interesting facts, and compelling quotes from the transcript above. Focus on elements that would resonate with a %s audience. Do NOT use general knowledge.`

const analyzeExpected = `A comprehensive analysis of the specific video including: main topic, 5-7 key points, interesting facts, compelling quotes, and audience insights from this video only.`

// createInstruction asks for a draft built on the analysis.
// Args: platform, content type, transcript, description.
const createInstruction = `Based on the analysis, create engaging content for %s. The content should be optimized for %s format. Make it compelling, informative, and shareable. Include relevant hashtags and call-to-actions where appropriate.
REFERENCE: Transcript below:
%s
REFERENCE: Description: %s
IMPORTANT: Use ONLY the transcript and description above.`

// createExpected. Args: content type.
const createExpected = `A well-crafted %s piece that captures the essence of the video while being optimized for the target platform.`

// optimizeInstruction asks for the final platform-ready version of the draft.
// Args: platform, content type, platform, transcript, description.
const optimizeInstruction = `Take the created content and optimize it specifically for %s %s. Apply platform-specific best practices, formatting, hashtag strategies, and engagement techniques. Ensure it follows %s guidelines and trends.
REFERENCE: Transcript below:
%s
REFERENCE: Description: %s
IMPORTANT: Use ONLY the transcript and description above.`

// optimizeExpected. Args: platform, content type.
const optimizeExpected = `Final optimized content ready for %s %s with proper formatting, hashtags, and platform-specific optimizations.`
